package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// GET /admin/users
func ListUsers(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := client.Users(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch users")})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// POST /admin/users
func CreateUser(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in api.RegisterRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.CreateUser(c.Request.Context(), middleware.CookieFrom(c), in); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to create user")})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User created"})
	}
}

// PUT /admin/users/:id
func UpdateUser(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var in models.User
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.UpdateUser(c.Request.Context(), middleware.CookieFrom(c), id, in); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to update user")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}

// DELETE /admin/users/:id
func DeleteUser(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := client.DeleteUser(c.Request.Context(), middleware.CookieFrom(c), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to delete user")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

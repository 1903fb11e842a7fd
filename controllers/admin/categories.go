package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// GET /admin/categories
func ListCategories(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := client.Categories(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch categories")})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /admin/categories
func CreateCategory(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Category
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.CreateCategory(c.Request.Context(), middleware.CookieFrom(c), in); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to create category")})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Category created"})
	}
}

// PUT /admin/categories/:id
func UpdateCategory(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var in models.Category
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.UpdateCategory(c.Request.Context(), middleware.CookieFrom(c), id, in); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to update category")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := client.DeleteCategory(c.Request.Context(), middleware.CookieFrom(c), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to delete category")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

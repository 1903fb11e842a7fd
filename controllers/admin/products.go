package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// The admin panels are passthrough CRUD: the gateway relays the admin's
// session cookie and surfaces upstream errors verbatim, with a manual
// refetch on the client after each mutation.

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GET /admin/products
func ListProducts(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := client.Products(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch products")})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /admin/products
func CreateProduct(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Product
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.CreateProduct(c.Request.Context(), middleware.CookieFrom(c), in); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to create product")})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product created"})
	}
}

// PUT /admin/products/:id
func UpdateProduct(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var in models.Product
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.UpdateProduct(c.Request.Context(), middleware.CookieFrom(c), id, in); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to update product")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// DELETE /admin/products/:id
func DeleteProduct(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := client.DeleteProduct(c.Request.Context(), middleware.CookieFrom(c), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to delete product")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

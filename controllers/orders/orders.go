package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
)

// GET /orders
//
// Order history for the logged-in visitor. The upstream scopes the list
// to the session's user.
func History(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := client.Orders(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Unable to get orders")})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id/items
func Items(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri struct {
			ID uint `uri:"id" binding:"required"`
		}
		if err := c.ShouldBindUri(&uri); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		items, err := client.OrderItems(c.Request.Context(), middleware.CookieFrom(c), uri.ID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch order items")})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

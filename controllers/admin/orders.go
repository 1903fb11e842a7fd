package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// GET /admin/orders
func ListOrders(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := client.Orders(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Unable to get orders")})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type statusInput struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=pending processing completed canceled"`
}

// PUT /admin/orders/:id
//
// The upstream owns the transition rules; an invalid transition comes
// back as a business rejection and is surfaced verbatim.
func UpdateOrderStatus(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var in statusInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		if err := client.UpdateOrderStatus(c.Request.Context(), middleware.CookieFrom(c), id, in.Status); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to update order")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
	}
}

// DELETE /admin/orders/:id
func DeleteOrder(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := client.DeleteOrder(c.Request.Context(), middleware.CookieFrom(c), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to delete order")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// GET /admin/orders/:id/items
func ListOrderItems(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		items, err := client.OrderItems(c.Request.Context(), middleware.CookieFrom(c), id)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch order items")})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

type itemQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PUT /admin/orders/item/:item_id
func UpdateOrderItem(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := parseID(c, "item_id")
		if !ok {
			return
		}
		var in itemQuantityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := client.UpdateOrderItem(c.Request.Context(), middleware.CookieFrom(c), itemID, in.Quantity); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to update order item")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order item updated"})
	}
}

// DELETE /admin/orders/:id/item/:item_id
func DeleteOrderItem(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "id")
		if !ok {
			return
		}
		itemID, ok := parseID(c, "item_id")
		if !ok {
			return
		}
		if err := client.DeleteOrderItem(c.Request.Context(), middleware.CookieFrom(c), orderID, itemID); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to delete order item")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order item deleted"})
	}
}

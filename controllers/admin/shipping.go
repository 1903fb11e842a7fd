package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// GET /admin/shipping
func GetDeliveryFee(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		shipping, err := client.Shipping(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to fetch delivery fee")})
			return
		}
		c.JSON(http.StatusOK, shipping)
	}
}

// PUT /admin/shipping
func UpdateDeliveryFee(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Shipping
		if err := c.ShouldBindJSON(&in); err != nil || in.DeliveryFee < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery fee"})
			return
		}
		if err := client.UpdateShipping(c.Request.Context(), middleware.CookieFrom(c), in.DeliveryFee); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to update delivery fee")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery fee updated", "delivery_fee": in.DeliveryFee})
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/Rolamaalouf/Mishatote-front/controllers/admin"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
)

// SetupAdminRoutes registers the back-office panels behind the admin
// role check.
func SetupAdminRoutes(r *gin.Engine, d *Deps) {
	admin := r.Group("/admin", middleware.RequireAdmin)
	{
		// ──────────────── Products ────────────────
		admin.GET("/products", adminControllers.ListProducts(d.API))
		admin.POST("/products", adminControllers.CreateProduct(d.API))
		admin.PUT("/products/:id", adminControllers.UpdateProduct(d.API))
		admin.DELETE("/products/:id", adminControllers.DeleteProduct(d.API))

		// ──────────────── Categories ────────────────
		admin.GET("/categories", adminControllers.ListCategories(d.API))
		admin.POST("/categories", adminControllers.CreateCategory(d.API))
		admin.PUT("/categories/:id", adminControllers.UpdateCategory(d.API))
		admin.DELETE("/categories/:id", adminControllers.DeleteCategory(d.API))

		// ──────────────── Orders ────────────────
		admin.GET("/orders", adminControllers.ListOrders(d.API))
		admin.PUT("/orders/:id", adminControllers.UpdateOrderStatus(d.API))
		admin.DELETE("/orders/:id", adminControllers.DeleteOrder(d.API))
		admin.GET("/orders/:id/items", adminControllers.ListOrderItems(d.API))
		admin.PUT("/orders/item/:item_id", adminControllers.UpdateOrderItem(d.API))
		admin.DELETE("/orders/:id/item/:item_id", adminControllers.DeleteOrderItem(d.API))

		// ──────────────── Users ────────────────
		admin.GET("/users", adminControllers.ListUsers(d.API))
		admin.POST("/users", adminControllers.CreateUser(d.API))
		admin.PUT("/users/:id", adminControllers.UpdateUser(d.API))
		admin.DELETE("/users/:id", adminControllers.DeleteUser(d.API))

		// ──────────────── Delivery fee ────────────────
		admin.GET("/shipping", adminControllers.GetDeliveryFee(d.API))
		admin.PUT("/shipping", adminControllers.UpdateDeliveryFee(d.API))

		// ──────────────── Reports ────────────────
		admin.GET("/export/products", adminControllers.ExportProducts(d.API))
		admin.GET("/export/orders", adminControllers.ExportOrders(d.API))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/Rolamaalouf/Mishatote-front/controllers/auth"
	cartControllers "github.com/Rolamaalouf/Mishatote-front/controllers/cart"
	catalogControllers "github.com/Rolamaalouf/Mishatote-front/controllers/catalog"
	contactControllers "github.com/Rolamaalouf/Mishatote-front/controllers/contact"
	orderControllers "github.com/Rolamaalouf/Mishatote-front/controllers/orders"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
)

// SetupStorefrontRoutes registers everything a visitor touches.
func SetupStorefrontRoutes(r *gin.Engine, d *Deps) {
	// ──────────────── Session ────────────────
	session := r.Group("/session")
	{
		session.GET("", authControllers.Me())
		session.POST("/login", authControllers.Login())
		session.POST("/logout", authControllers.Logout(d.Registry))
		session.POST("/register", authControllers.Register(d.API))
	}

	// ──────────────── Shop (home / totes grid) ────────────────
	shop := r.Group("/shop")
	{
		shop.GET("", catalogControllers.Browse(d.Catalog))
		shop.GET("/products/:id", catalogControllers.GetProduct(d.API))
		shop.POST("/cart", catalogControllers.AddSelection(d.Catalog, d.API))
	}

	// ──────────────── Cart (popup + full page) ────────────────
	// Reads are open: anonymous visitors see an empty ready cart.
	// Mutations are gated inside the store itself.
	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart())
		cart.POST("/items", cartControllers.AddItem())
		cart.PUT("/items/:product_id", cartControllers.UpdateItem())
		cart.DELETE("/items/:product_id", cartControllers.RemoveItem())
		cart.DELETE("", cartControllers.Clear())
	}

	// ──────────────── Checkout ────────────────
	r.GET("/checkout", d.Checkout.Begin())
	r.POST("/checkout", d.Checkout.Submit())

	// ──────────────── Order history ────────────────
	orders := r.Group("/orders", middleware.RequireAuth)
	{
		orders.GET("", orderControllers.History(d.API))
		orders.GET("/:id/items", orderControllers.Items(d.API))
	}

	// ──────────────── Contact & subscribe ────────────────
	r.POST("/contact", contactControllers.Submit(d.API, d.Mailer))
	r.POST("/subscribe", contactControllers.Subscribe(d.Mailer))
}

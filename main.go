package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/catalog"
	"github.com/Rolamaalouf/Mishatote-front/config"
	checkoutControllers "github.com/Rolamaalouf/Mishatote-front/controllers/checkout"
	"github.com/Rolamaalouf/Mishatote-front/mailer"
	"github.com/Rolamaalouf/Mishatote-front/routes"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

func main() {
	log.Println("✅ Starting storefront gateway...")

	cfg := config.Load()

	// Upstream shop API client
	client := api.New(cfg.APIURL)

	// Per-visitor store pairs, evicted after idle TTL
	registry := stores.NewRegistry(client, cfg.SessionTTL)

	// Checkout flows live exactly as long as their session: logout and
	// the idle sweep both evict them.
	checkoutCtrl := checkoutControllers.New(client)
	registry.OnEvict(checkoutCtrl.DropFlow)
	go registry.Sweep(5 * time.Minute)

	// Transactional mail for the contact/subscribe forms
	mail := mailer.NewEmailJS(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)
	if !mail.Enabled() {
		log.Println("⚠️ EmailJS not configured; contact mail disabled")
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		API:           client,
		Registry:      registry,
		Catalog:       catalog.New(client),
		Checkout:      checkoutCtrl,
		Mailer:        mail,
		SessionCookie: cfg.SessionCookie,
	})

	// Start server
	log.Printf("🚀 Gateway running on port %s (upstream: %s)...", cfg.Port, cfg.APIURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

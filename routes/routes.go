package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/catalog"
	checkoutControllers "github.com/Rolamaalouf/Mishatote-front/controllers/checkout"
	"github.com/Rolamaalouf/Mishatote-front/mailer"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

// Deps is everything the route groups need, wired once in main.
type Deps struct {
	API      *api.Client
	Registry *stores.Registry
	Catalog  *catalog.Service
	Checkout *checkoutControllers.Controller
	Mailer   *mailer.EmailJS

	// Name of the upstream session cookie
	SessionCookie string
}

// SetupRoutes is the single entry-point that wires up the storefront and
// admin route groups.
func SetupRoutes(r *gin.Engine, d *Deps) {
	// Every request gets its session store pair attached first.
	r.Use(middleware.Session(d.Registry, d.SessionCookie))

	SetupStorefrontRoutes(r, d)

	SetupAdminRoutes(r, d)
}

package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GET /session
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if !sess.Auth.IsAuthenticated() {
			c.JSON(http.StatusOK, gin.H{"status": "anonymous"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "authenticated", "user": sess.Auth.User()})
	}
}

// POST /session/login
//
// On success the upstream Set-Cookie headers are relayed so the browser
// adopts the new session, and a redirect target is returned: the
// ?redirect bounce-back when present, otherwise role-based (admins land
// on the product dashboard).
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		sess := middleware.SessionFrom(c)
		user, setCookies, err := sess.Auth.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login failed. Check credentials."})
			return
		}

		for _, sc := range setCookies {
			c.Writer.Header().Add("Set-Cookie", sc)
		}

		redirect := c.Query("redirect")
		if redirect == "" {
			if user.IsAdmin() {
				redirect = "/dashboardProduct"
			} else {
				redirect = "/"
			}
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "redirect": redirect})
	}
}

// POST /session/logout
//
// Local state is cleared and the visitor is sent to login even when the
// upstream call failed; a session must never get stuck authenticated.
func Logout(registry *stores.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		setCookies := sess.Auth.Logout(c.Request.Context())
		registry.Drop(middleware.CookieFrom(c))

		for _, sc := range setCookies {
			c.Writer.Header().Add("Set-Cookie", sc)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login"})
	}
}

type registerInput struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Address  models.Address `json:"address"`
}

// POST /session/register
func Register(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in registerInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := client.Register(c.Request.Context(), api.RegisterRequest{
			Name:     in.Name,
			Email:    in.Email,
			Password: in.Password,
			Address:  in.Address,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": api.Message(err, "Registration failed")})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Account created", "redirect": "/login"})
	}
}

package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/stores"
)

const (
	sessionKey = "session"
	cookieKey  = "sessionCookie"
)

// sessionCookie extracts the upstream session cookie pair from the Cookie
// header. Unrelated cookies (theme, analytics ids) are discarded so one
// upstream session never fragments into several store pairs, and only the
// session cookie is ever relayed upstream.
func sessionCookie(r *http.Request, name string) string {
	for _, ck := range r.Cookies() {
		if ck.Name == name {
			return ck.Name + "=" + ck.Value
		}
	}
	return ""
}

// Session attaches the visitor's store pair to the request context and
// runs the one-time auth check, so downstream handlers never observe the
// loading state. cookieName is the upstream session cookie's name; store
// pairs are keyed on that cookie alone.
func Session(registry *stores.Registry, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := sessionCookie(c.Request, cookieName)
		sess := registry.Session(cookie)
		sess.EnsureInit(c.Request.Context())
		c.Set(sessionKey, sess)
		c.Set(cookieKey, cookie)
		c.Next()
	}
}

// SessionFrom pulls the store pair set by Session.
func SessionFrom(c *gin.Context) *stores.Session {
	return c.MustGet(sessionKey).(*stores.Session)
}

// CookieFrom returns the canonical session cookie pair set by Session;
// empty for visitors without an upstream session.
func CookieFrom(c *gin.Context) string {
	return c.GetString(cookieKey)
}

// RequireAuth rejects anonymous visitors with a login redirect carrying
// the return path, the storefront's bounce-back pattern.
func RequireAuth(c *gin.Context) {
	sess := SessionFrom(c)
	if !sess.Auth.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Please log in to continue",
			"redirect": "/login?redirect=" + url.QueryEscape(c.Request.URL.Path),
		})
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin gates the back-office routes.
func RequireAdmin(c *gin.Context) {
	sess := SessionFrom(c)
	user := sess.Auth.User()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Please log in to continue",
			"redirect": "/login?redirect=" + url.QueryEscape(c.Request.URL.Path),
		})
		c.Abort()
		return
	}
	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

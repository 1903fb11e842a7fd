package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

// upstream serves /users/me with a role per session cookie.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.Header.Get("Cookie") {
		case "session=admin":
			json.NewEncoder(w).Encode(map[string]any{
				"user": models.User{ID: 1, Name: "Rola", Role: models.RoleAdmin},
			})
		case "session=customer":
			json.NewEncoder(w).Encode(map[string]any{
				"user": models.User{ID: 2, Name: "Sami", Role: models.RoleCustomer},
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "not logged in"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := stores.NewRegistry(api.New(upstream(t).URL), time.Hour)

	r := gin.New()
	r.Use(Session(registry, "session"))
	r.GET("/orders", RequireAuth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/admin/products", RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, fmt.Sprintf("%p", SessionFrom(c)))
	})
	return r
}

func doRequest(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/orders", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Please log in to continue", body["error"])
	assert.Equal(t, "/login?redirect=%2Forders", body["redirect"])
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/orders", "session=customer")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsCustomer(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/admin/products", "session=customer")

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Admin access required", body["error"])
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/admin/products", "session=admin")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionIgnoresUnrelatedCookies(t *testing.T) {
	r := testRouter(t)

	// The upstream fake only authenticates an exact "session=customer"
	// Cookie header, so this passes only if the middleware strips the
	// unrelated cookies before relaying.
	w := doRequest(r, "/orders", "theme=dark; session=customer; _ga=GA1.2.1234")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionKeyedOnSessionCookieAlone(t *testing.T) {
	r := testRouter(t)

	// Same upstream session, different surrounding cookies: one store pair.
	a := doRequest(r, "/whoami", "session=customer")
	b := doRequest(r, "/whoami", "theme=dark; session=customer")

	require.Equal(t, http.StatusOK, a.Code)
	require.Equal(t, http.StatusOK, b.Code)
	assert.Equal(t, a.Body.String(), b.Body.String())

	other := doRequest(r, "/whoami", "session=admin")
	assert.NotEqual(t, a.Body.String(), other.Body.String())
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/admin/products", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

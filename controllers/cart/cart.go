package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

type cartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type quantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

var statusLabels = map[stores.CartStatus]string{
	stores.CartUninitialized: "uninitialized",
	stores.CartLoading:       "loading",
	stores.CartReady:         "ready",
	stores.CartError:         "error",
}

// cartView is the display state both the popup and the full cart page
// render: lines plus the derived totals and the current status.
func cartView(cart *stores.Cart) gin.H {
	view := gin.H{
		"status":    statusLabels[cart.Status()],
		"items":     cart.Lines(),
		"itemCount": cart.ItemCount(),
		"subtotal":  cart.Subtotal(),
	}
	if msg := cart.LastError(); msg != "" {
		view["error"] = msg
	}
	return view
}

func writeCartError(c *gin.Context, err error) {
	var stockErr *stores.StockError
	switch {
	case errors.Is(err, stores.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": "/login"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error(), "available": stockErr.Available})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if err := sess.Cart.Fetch(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, cartView(sess.Cart))
			return
		}
		c.JSON(http.StatusOK, cartView(sess.Cart))
	}
}

// POST /cart/items
func AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess := middleware.SessionFrom(c)
		if err := sess.Cart.Add(c.Request.Context(), in.ProductID, in.Quantity); err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cartView(sess.Cart))
	}
}

// PUT /cart/items/:product_id
func UpdateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var in quantityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantities below one are a no-op by contract, not an error;
		// the decrement button simply bottoms out at one.
		sess := middleware.SessionFrom(c)
		if err := sess.Cart.UpdateQuantity(c.Request.Context(), uint(productID), in.Quantity); err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartView(sess.Cart))
	}
}

// DELETE /cart/items/:product_id
func RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		sess := middleware.SessionFrom(c)
		if err := sess.Cart.Remove(c.Request.Context(), uint(productID)); err != nil {
			writeCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartView(sess.Cart))
	}
}

// DELETE /cart
func Clear() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		sess.Cart.Clear(c.Request.Context())
		c.JSON(http.StatusOK, cartView(sess.Cart))
	}
}

package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/catalog"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
)

// GET /shop?category_id=&sort=
//
// One unscoped fetch; the category filter and price sort are applied
// in-process, matching the storefront grid behaviour.
func Browse(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.Browse(c.Request.Context(), middleware.CookieFrom(c))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to load products")})
			return
		}

		categoryID := uint(0)
		if v := c.Query("category_id"); v != "" && v != "all" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			categoryID = uint(id)
		}
		sortOrder := c.DefaultQuery("sort", catalog.SortLowToHigh)

		products := catalog.SortByPrice(catalog.FilterByCategory(page.Products, categoryID), sortOrder)
		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": page.Categories,
			"category":   categoryID,
			"sort":       sortOrder,
		})
	}
}

// GET /shop/products/:id
func GetProduct(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		product, err := client.Product(c.Request.Context(), middleware.CookieFrom(c), uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": api.Message(err, "Product not found")})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

type addSelectionInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// POST /shop/cart
//
// The quantity-modal confirm: validates the selection against the
// product's stock, then adds through the cart store. Anonymous visitors
// are prompted to log in and nothing is sent upstream.
func AddSelection(svc *catalog.Service, client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addSelectionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess := middleware.SessionFrom(c)
		if !sess.Auth.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Log in first to add items to the cart!",
				"redirect": "/login",
			})
			return
		}

		cookie := middleware.CookieFrom(c)
		product, err := client.Product(c.Request.Context(), cookie, in.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": api.Message(err, "Product does not exist")})
			return
		}

		if err := svc.AddSelection(c.Request.Context(), sess.Cart, *product, in.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Added to cart!",
			"itemCount": sess.Cart.ItemCount(),
		})
	}
}

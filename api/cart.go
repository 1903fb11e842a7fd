package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rolamaalouf/Mishatote-front/models"
)

type cartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// Cart reads the raw cart rows (product id + quantity only).
func (c *Client) Cart(ctx context.Context, cookie string) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	if err := c.do(ctx, http.MethodGet, "/cart", cookie, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) AddToCart(ctx context.Context, cookie string, productID uint, quantity int) error {
	in := cartItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/cart", cookie, in, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, cookie string, productID uint, quantity int) error {
	path := fmt.Sprintf("/cart/%d", productID)
	return c.do(ctx, http.MethodPut, path, cookie, quantityRequest{Quantity: quantity}, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, cookie string, productID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", productID), cookie, nil, nil)
}

// ClearCart hits the bulk-clear endpoint. Not every deployment of the shop
// API supports it; callers fall back to per-line deletes on failure.
func (c *Client) ClearCart(ctx context.Context, cookie string) error {
	return c.do(ctx, http.MethodDelete, "/cart", cookie, nil, nil)
}

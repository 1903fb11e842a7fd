package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rolamaalouf/Mishatote-front/models"
)

// Checkout places an order. idempotencyKey is generated once per checkout
// flow so a retried submission cannot create a duplicate order.
func (c *Client) Checkout(ctx context.Context, cookie string, in models.CheckoutRequest, idempotencyKey string) (*models.CheckoutResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/orders/checkout", cookie, in)
	if err != nil {
		return nil, err
	}
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	var out models.CheckoutResponse
	if _, err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orders(ctx context.Context, cookie string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", cookie, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, cookie string, id uint, status models.OrderStatus) error {
	in := struct {
		Status models.OrderStatus `json:"status"`
	}{Status: status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), cookie, in, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, cookie string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), cookie, nil, nil)
}

func (c *Client) OrderItems(ctx context.Context, cookie string, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	path := fmt.Sprintf("/orders/%d/items", orderID)
	if err := c.do(ctx, http.MethodGet, path, cookie, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) UpdateOrderItem(ctx context.Context, cookie string, itemID uint, quantity int) error {
	path := fmt.Sprintf("/orders/item/%d", itemID)
	return c.do(ctx, http.MethodPut, path, cookie, quantityRequest{Quantity: quantity}, nil)
}

func (c *Client) DeleteOrderItem(ctx context.Context, cookie string, orderID, itemID uint) error {
	path := fmt.Sprintf("/orders/%d/item/%d", orderID, itemID)
	return c.do(ctx, http.MethodDelete, path, cookie, nil, nil)
}

package api

import (
	"context"
	"net/http"

	"github.com/Rolamaalouf/Mishatote-front/models"
)

func (c *Client) Shipping(ctx context.Context) (*models.Shipping, error) {
	var s models.Shipping
	if err := c.do(ctx, http.MethodGet, "/shipping", "", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateShipping(ctx context.Context, cookie string, fee float64) error {
	return c.do(ctx, http.MethodPut, "/shipping", cookie, models.Shipping{DeliveryFee: fee}, nil)
}

func (c *Client) SubmitContact(ctx context.Context, in models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact/submit", "", in, nil)
}

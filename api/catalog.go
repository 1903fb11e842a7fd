package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rolamaalouf/Mishatote-front/models"
)

func (c *Client) Products(ctx context.Context, cookie string) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", cookie, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, cookie string, id uint) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), cookie, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Categories(ctx context.Context, cookie string) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", cookie, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ───────────────── Admin: catalog management ─────────────────

func (c *Client) CreateProduct(ctx context.Context, cookie string, in models.Product) error {
	return c.do(ctx, http.MethodPost, "/products", cookie, in, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, cookie string, id uint, in models.Product) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), cookie, in, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, cookie string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), cookie, nil, nil)
}

func (c *Client) CreateCategory(ctx context.Context, cookie string, in models.Category) error {
	return c.do(ctx, http.MethodPost, "/categories", cookie, in, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, cookie string, id uint, in models.Category) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), cookie, in, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, cookie string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), cookie, nil, nil)
}

package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

// Sort orders for the price dropdown.
const (
	SortLowToHigh = "lowToHigh"
	SortHighToLow = "highToLow"
)

// ErrQuantityTooLow rejects a zero/negative quantity selection.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// Service loads the product grid data. Category filtering and price
// sorting are client-side transforms of one unscoped fetch; no scoped
// refetch is issued when the filter changes.
type Service struct {
	api *api.Client
}

func New(client *api.Client) *Service {
	return &Service{api: client}
}

// Page is what a storefront grid needs to render.
type Page struct {
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
}

// Browse fetches products and categories independently. A categories
// failure degrades to an empty filter list rather than failing the page;
// a products failure fails the page.
func (s *Service) Browse(ctx context.Context, cookie string) (*Page, error) {
	var (
		wg         sync.WaitGroup
		products   []models.Product
		categories []models.Category

		productsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, productsErr = s.api.Products(ctx, cookie)
	}()
	go func() {
		defer wg.Done()
		categories, _ = s.api.Categories(ctx, cookie)
	}()
	wg.Wait()

	if productsErr != nil {
		return nil, productsErr
	}
	return &Page{Products: products, Categories: categories}, nil
}

// FilterByCategory keeps products in the category; zero means all.
func FilterByCategory(products []models.Product, categoryID uint) []models.Product {
	if categoryID == 0 {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortByPrice returns a sorted copy; the fetched order is untouched.
func SortByPrice(products []models.Product, order string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortHighToLow {
			return sorted[i].Price > sorted[j].Price
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}

// AddSelection is the quantity-modal confirm: it validates the selection
// against the product's stock before any request is sent, then delegates
// to the cart store.
func (s *Service) AddSelection(ctx context.Context, cart *stores.Cart, product models.Product, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	if quantity > product.Stock {
		return &stores.StockError{ProductID: product.ID, Available: product.Stock}
	}
	return cart.Add(ctx, product.ID, quantity)
}

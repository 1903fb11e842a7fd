package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

var gridProducts = []models.Product{
	{ID: 1, Name: "Canvas tote", Price: 25, CategoryID: 1, Stock: 10},
	{ID: 2, Name: "Linen tote", Price: 15, CategoryID: 2, Stock: 5},
	{ID: 3, Name: "Mini tote", Price: 40, CategoryID: 1, Stock: 3},
}

func TestBrowseDegradesOnCategoriesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode(gridProducts)
		case "/categories":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}
	}))
	defer srv.Close()

	page, err := New(api.New(srv.URL)).Browse(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, page.Products, 3)
	assert.Empty(t, page.Categories)
}

func TestBrowseFailsWhenProductsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		case "/categories":
			json.NewEncoder(w).Encode([]models.Category{{ID: 1, Name: "Classic"}})
		}
	}))
	defer srv.Close()

	_, err := New(api.New(srv.URL)).Browse(context.Background(), "")

	assert.Error(t, err)
}

func TestFilterByCategory(t *testing.T) {
	filtered := FilterByCategory(gridProducts, 1)
	require.Len(t, filtered, 2)
	assert.Equal(t, uint(1), filtered[0].ID)
	assert.Equal(t, uint(3), filtered[1].ID)

	// Zero means no filter.
	assert.Len(t, FilterByCategory(gridProducts, 0), 3)
	assert.Empty(t, FilterByCategory(gridProducts, 99))
}

func TestSortByPrice(t *testing.T) {
	asc := SortByPrice(gridProducts, SortLowToHigh)
	assert.Equal(t, []uint{2, 1, 3}, productIDs(asc))

	desc := SortByPrice(gridProducts, SortHighToLow)
	assert.Equal(t, []uint{3, 1, 2}, productIDs(desc))

	// The input order is never mutated.
	assert.Equal(t, []uint{1, 2, 3}, productIDs(gridProducts))
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestAddSelectionValidatesBeforeAnyRequest(t *testing.T) {
	var addCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users/me":
			json.NewEncoder(w).Encode(map[string]any{"user": models.User{ID: 1, Role: models.RoleCustomer}})
		case r.URL.Path == "/cart" && r.Method == http.MethodPost:
			atomic.AddInt32(&addCalls, 1)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"message": "added"})
		case r.URL.Path == "/cart":
			json.NewEncoder(w).Encode([]models.CartEntry{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := api.New(srv.URL)
	auth := stores.NewAuth(client, "session=abc")
	auth.Initialize(context.Background())
	cart := stores.NewCart(client, auth, "session=abc")
	svc := New(client)

	product := models.Product{ID: 3, Name: "Mini tote", Price: 40, Stock: 3}

	err := svc.AddSelection(context.Background(), cart, product, 0)
	assert.ErrorIs(t, err, ErrQuantityTooLow)

	err = svc.AddSelection(context.Background(), cart, product, 5)
	var stockErr *stores.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)

	assert.Zero(t, atomic.LoadInt32(&addCalls))

	require.NoError(t, svc.AddSelection(context.Background(), cart, product, 2))
	assert.Equal(t, int32(1), atomic.LoadInt32(&addCalls))
}

package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// fakeShop is a minimal in-memory stand-in for the upstream shop API.
type fakeShop struct {
	mu sync.Mutex

	loggedIn     bool
	logoutStatus int
	user         models.User

	products    map[uint]models.Product
	productFail map[uint]bool

	cart      []models.CartEntry
	bulkClear bool

	failAdd    bool
	failUpdate bool
	failRemove bool

	cartCalls   int
	addCalls    int
	updateCalls int
	removeCalls int

	// When set, GET /cart signals cartEntered and then blocks on
	// cartGate, letting tests hold a reload open mid-flight.
	cartEntered chan struct{}
	cartGate    chan struct{}

	srv *httptest.Server
}

func newFakeShop(t *testing.T) *fakeShop {
	t.Helper()
	f := &fakeShop{
		loggedIn:     true,
		logoutStatus: http.StatusOK,
		user: models.User{
			ID: 1, Name: "Rola", Email: "rola@example.com", Role: models.RoleCustomer,
			Address: models.Address{
				Region: "Beirut", AddressDirection: "Near the old lighthouse",
				Phone: "+9611234567890", Building: "Sea Tower", Floor: "4",
			},
		},
		products:    make(map[uint]models.Product),
		productFail: make(map[uint]bool),
		bulkClear:   true,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeShop) client() *api.Client { return api.New(f.srv.URL) }

func (f *fakeShop) addProduct(p models.Product) {
	f.mu.Lock()
	f.products[p.ID] = p
	f.mu.Unlock()
}

func (f *fakeShop) seedCart(entries ...models.CartEntry) {
	f.mu.Lock()
	f.cart = append([]models.CartEntry(nil), entries...)
	f.mu.Unlock()
}

func (f *fakeShop) cartEntries() []models.CartEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CartEntry(nil), f.cart...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeShop) gateCart(cartEntered, cartGate chan struct{}) {
	f.mu.Lock()
	f.cartEntered = cartEntered
	f.cartGate = cartGate
	f.mu.Unlock()
}

func (f *fakeShop) addCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addCalls
}

func (f *fakeShop) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/cart" && r.Method == http.MethodGet {
		f.mu.Lock()
		entered, gate := f.cartEntered, f.cartGate
		f.mu.Unlock()
		if gate != nil {
			entered <- struct{}{}
			<-gate
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	switch {
	case path == "/users/me" && r.Method == http.MethodGet:
		if !f.loggedIn {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": f.user})

	case path == "/users/login" && r.Method == http.MethodPost:
		var in struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
			return
		}
		w.Header().Add("Set-Cookie", "session=fresh; Path=/; HttpOnly")
		writeJSON(w, http.StatusOK, map[string]any{"user": f.user})

	case path == "/users/logout" && r.Method == http.MethodPost:
		if f.logoutStatus != http.StatusOK {
			writeJSON(w, f.logoutStatus, map[string]string{"error": "logout failed"})
			return
		}
		w.Header().Add("Set-Cookie", "session=; Path=/; Max-Age=0")
		writeJSON(w, http.StatusOK, map[string]string{"message": "bye"})

	case path == "/cart" && r.Method == http.MethodGet:
		f.cartCalls++
		writeJSON(w, http.StatusOK, f.cart)

	case path == "/cart" && r.Method == http.MethodPost:
		f.addCalls++
		if f.failAdd {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "add failed"})
			return
		}
		var in models.CartEntry
		json.NewDecoder(r.Body).Decode(&in)
		for i := range f.cart {
			if f.cart[i].ProductID == in.ProductID {
				f.cart[i].Quantity += in.Quantity
				writeJSON(w, http.StatusCreated, f.cart[i])
				return
			}
		}
		f.cart = append(f.cart, in)
		writeJSON(w, http.StatusCreated, in)

	case path == "/cart" && r.Method == http.MethodDelete:
		if !f.bulkClear {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		f.cart = nil
		writeJSON(w, http.StatusOK, map[string]string{"message": "cleared"})

	case strings.HasPrefix(path, "/cart/"):
		id, err := strconv.ParseUint(strings.TrimPrefix(path, "/cart/"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad id"})
			return
		}
		switch r.Method {
		case http.MethodPut:
			f.updateCalls++
			if f.failUpdate {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "update failed"})
				return
			}
			var in struct {
				Quantity int `json:"quantity"`
			}
			json.NewDecoder(r.Body).Decode(&in)
			for i := range f.cart {
				if f.cart[i].ProductID == uint(id) {
					f.cart[i].Quantity = in.Quantity
				}
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "updated"})
		case http.MethodDelete:
			f.removeCalls++
			if f.failRemove {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "remove failed"})
				return
			}
			kept := f.cart[:0]
			for _, e := range f.cart {
				if e.ProductID != uint(id) {
					kept = append(kept, e)
				}
			}
			f.cart = kept
			writeJSON(w, http.StatusOK, map[string]string{"message": "removed"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	case strings.HasPrefix(path, "/products/") && r.Method == http.MethodGet:
		id, err := strconv.ParseUint(strings.TrimPrefix(path, "/products/"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad id"})
			return
		}
		if f.productFail[uint(id)] {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		p, ok := f.products[uint(id)]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product does not exist"})
			return
		}
		writeJSON(w, http.StatusOK, p)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("no route %s %s", r.Method, path)})
	}
}

// newReadyCart returns an authenticated, fetched cart store over the fake.
func newReadyCart(t *testing.T, f *fakeShop) *Cart {
	t.Helper()
	client := f.client()
	auth := NewAuth(client, "session=abc")
	auth.Initialize(context.Background())
	cart := NewCart(client, auth, "session=abc")
	require.NoError(t, cart.Fetch(context.Background()))
	return cart
}

func TestFetchComputesDerivedTotals(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 12.5, Stock: 10})
	f.addProduct(models.Product{ID: 2, Name: "Linen tote", Price: 20, Stock: 5})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 2}, models.CartEntry{ProductID: 2, Quantity: 1})

	cart := newReadyCart(t, f)

	assert.Equal(t, CartReady, cart.Status())
	assert.Equal(t, 3, cart.ItemCount())
	assert.InDelta(t, 45.0, cart.Subtotal(), 1e-9)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Canvas tote", lines[0].Name)
	assert.Equal(t, 10, lines[0].Stock)
}

func TestFetchDoesNothingWhileAuthUnresolved(t *testing.T) {
	f := newFakeShop(t)
	client := f.client()
	auth := NewAuth(client, "session=abc") // never initialized
	cart := NewCart(client, auth, "session=abc")

	require.NoError(t, cart.Fetch(context.Background()))

	assert.Equal(t, CartUninitialized, cart.Status())
	assert.Equal(t, 0, f.cartCalls)
}

func TestFetchAnonymousYieldsEmptyReadyCart(t *testing.T) {
	f := newFakeShop(t)
	f.loggedIn = false
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 2})

	client := f.client()
	auth := NewAuth(client, "")
	auth.Initialize(context.Background())
	cart := NewCart(client, auth, "")

	require.NoError(t, cart.Fetch(context.Background()))

	assert.Equal(t, CartReady, cart.Status())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, 0, f.cartCalls)
}

func TestAddIncrementsExistingLine(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 7, Name: "Mini tote", Price: 8, Stock: 20})
	cart := newReadyCart(t, f)

	require.NoError(t, cart.Add(context.Background(), 7, 1))
	require.NoError(t, cart.Add(context.Background(), 7, 2))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(7), lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount())

	entries := f.cartEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestAddRejectsAnonymousVisitor(t *testing.T) {
	f := newFakeShop(t)
	f.loggedIn = false

	client := f.client()
	auth := NewAuth(client, "")
	auth.Initialize(context.Background())
	cart := NewCart(client, auth, "")

	err := cart.Add(context.Background(), 7, 1)

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, 0, f.addCalls)
	assert.Equal(t, 0, cart.ItemCount())
}

func TestAddFailureReconcilesWithUpstream(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 12.5, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 1})
	cart := newReadyCart(t, f)

	f.failAdd = true
	err := cart.Add(context.Background(), 1, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "add failed")
	// The reconciling refetch restores the upstream's view.
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestUpdateQuantityBelowOneIsNoop(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 12.5, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 2})
	cart := newReadyCart(t, f)

	require.NoError(t, cart.UpdateQuantity(context.Background(), 1, 0))

	assert.Equal(t, 0, f.updateCalls)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestUpdateQuantityRejectsExceedingStock(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 12.5, Stock: 3})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 2})
	cart := newReadyCart(t, f)

	err := cart.UpdateQuantity(context.Background(), 1, 4)

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Contains(t, err.Error(), "3")
	assert.Equal(t, 0, f.updateCalls)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestUpdateQuantityOptimisticThenConfirmed(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 1})
	cart := newReadyCart(t, f)

	require.NoError(t, cart.UpdateQuantity(context.Background(), 1, 4))

	assert.Equal(t, 4, cart.ItemCount())
	assert.InDelta(t, 40.0, cart.Subtotal(), 1e-9)
	assert.Equal(t, 4, f.cartEntries()[0].Quantity)
}

func TestUpdateFailureReconcilesWithUpstream(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 2})
	cart := newReadyCart(t, f)

	f.failUpdate = true
	err := cart.UpdateQuantity(context.Background(), 1, 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "update failed")
	assert.Equal(t, 2, cart.ItemCount())
}

func TestRemoveDeletesLine(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.addProduct(models.Product{ID: 2, Name: "Linen tote", Price: 20, Stock: 5})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 1}, models.CartEntry{ProductID: 2, Quantity: 1})
	cart := newReadyCart(t, f)

	require.NoError(t, cart.Remove(context.Background(), 1))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ProductID)
	assert.Len(t, f.cartEntries(), 1)
}

func TestClearPrefersBulkEndpoint(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 2})
	cart := newReadyCart(t, f)

	cart.Clear(context.Background())

	assert.Equal(t, 0, cart.ItemCount())
	assert.Empty(t, f.cartEntries())
	assert.Equal(t, 0, f.removeCalls)
}

func TestClearFallsBackToPerLineDeletes(t *testing.T) {
	f := newFakeShop(t)
	f.bulkClear = false
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.addProduct(models.Product{ID: 2, Name: "Linen tote", Price: 20, Stock: 5})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 1}, models.CartEntry{ProductID: 2, Quantity: 1})
	cart := newReadyCart(t, f)

	cart.Clear(context.Background())

	assert.Equal(t, 0, cart.ItemCount())
	assert.Empty(t, f.cartEntries())
	assert.Equal(t, 2, f.removeCalls)
}

func TestClearNeverBlocksLocally(t *testing.T) {
	f := newFakeShop(t)
	f.bulkClear = false
	f.failRemove = true
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 1})
	cart := newReadyCart(t, f)

	cart.Clear(context.Background())

	// Remote clear failed entirely, local state is empty regardless.
	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, CartReady, cart.Status())
}

func TestFetchQueuesBehindInFlightMutation(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 1})
	cart := newReadyCart(t, f)

	entered := make(chan struct{}, 4)
	gate := make(chan struct{})
	f.gateCart(entered, gate)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = cart.Fetch(context.Background())
	}()
	// The reload is now holding its upstream call open.
	<-entered

	go func() {
		defer wg.Done()
		_ = cart.Add(context.Background(), 1, 2)
	}()

	// The add must queue behind the reload, not interleave with it.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, f.addCallCount())

	close(gate)
	wg.Wait()

	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 3, f.cartEntries()[0].Quantity)
}

func TestCheckoutEmptiesCart(t *testing.T) {
	f := newFakeShop(t)
	f.addProduct(models.Product{ID: 1, Name: "Canvas tote", Price: 10, Stock: 10})
	f.seedCart(models.CartEntry{ProductID: 1, Quantity: 3})
	cart := newReadyCart(t, f)
	require.Equal(t, 3, cart.ItemCount())

	cart.Checkout(context.Background())

	assert.Equal(t, 0, cart.ItemCount())
	assert.InDelta(t, 0.0, cart.Subtotal(), 1e-9)
}

package stores

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

type CartStatus int

const (
	CartUninitialized CartStatus = iota
	CartLoading
	CartReady
	CartError
)

// ErrNotLoggedIn rejects cart mutations for anonymous visitors before any
// request is sent.
var ErrNotLoggedIn = errors.New("log in first to add items to the cart")

// StockError rejects a quantity that exceeds the cached stock snapshot of
// a line. It names the available quantity so the UI can show it.
type StockError struct {
	ProductID uint
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("only %d item(s) available in stock", e.Available)
}

// Cart holds one visitor's cart lines and their display status. Derived
// values (item count, subtotal) are always recomputed from the lines,
// never stored, so they cannot drift.
//
// Mutations and full reloads are serialized by opMu for the whole
// optimistic-update + network + reconcile sequence, so two rapid updates
// to the same line cannot apply out of order and a reload cannot
// overwrite an in-flight mutation's optimistic state.
type Cart struct {
	opMu sync.Mutex
	mu   sync.RWMutex

	api    *api.Client
	auth   *Auth
	cookie string

	status  CartStatus
	lines   []models.CartLine
	lastErr string
}

func NewCart(client *api.Client, auth *Auth, cookie string) *Cart {
	return &Cart{api: client, auth: auth, cookie: cookie, status: CartUninitialized}
}

// Fetch rebuilds the cart from the upstream. While the auth check is
// still pending it does nothing, so a logged-in visitor never sees a
// flash of an empty cart. Anonymous visitors get an empty ready cart.
func (c *Cart) Fetch(ctx context.Context) error {
	if !c.auth.Resolved() {
		return nil
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	if !c.auth.IsAuthenticated() {
		c.setReady(nil)
		return nil
	}

	c.setStatus(CartLoading)
	entries, err := c.api.Cart(ctx, c.cookie)
	if err != nil {
		c.setError("Failed to load cart items")
		return err
	}

	c.setReady(EnrichCart(ctx, c.api, c.cookie, entries))
	return nil
}

// Add inserts a new line or increments the existing one for the product.
// The local state is updated before the request resolves; afterwards a
// refetch reconciles and enriches, whether the request succeeded or not.
func (c *Cart) Add(ctx context.Context, productID uint, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if !c.auth.IsAuthenticated() {
		return ErrNotLoggedIn
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	found := false
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, models.CartLine{ProductID: productID, Quantity: quantity})
	}
	c.status = CartLoading
	c.mu.Unlock()

	if err := c.api.AddToCart(ctx, c.cookie, productID, quantity); err != nil {
		c.refetch(ctx)
		return fmt.Errorf("%s", api.Message(err, "Failed to add item to cart"))
	}

	// New lines carry no product snapshot yet; the refetch attaches it.
	c.refetch(ctx)
	return nil
}

// UpdateQuantity sets a line's quantity. Quantities below one are a no-op
// (a decrement to zero is never sent); quantities above the cached stock
// snapshot are rejected locally with no request issued.
func (c *Cart) UpdateQuantity(ctx context.Context, productID uint, quantity int) error {
	if quantity < 1 {
		return nil
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	idx := -1
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("product %d is not in the cart", productID)
	}
	line := c.lines[idx]
	if !line.Unavailable && quantity > line.Stock {
		c.mu.Unlock()
		return &StockError{ProductID: productID, Available: line.Stock}
	}

	c.lines[idx].Quantity = quantity
	c.mu.Unlock()

	if err := c.api.UpdateCartItem(ctx, c.cookie, productID, quantity); err != nil {
		c.refetch(ctx)
		return fmt.Errorf("%s", api.Message(err, "Failed to update cart item"))
	}
	return nil
}

// Remove deletes a line, optimistically first.
func (c *Cart) Remove(ctx context.Context, productID uint) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
	c.mu.Unlock()

	if err := c.api.RemoveCartItem(ctx, c.cookie, productID); err != nil {
		c.refetch(ctx)
		return fmt.Errorf("%s", api.Message(err, "Failed to remove cart item"))
	}
	return nil
}

// Clear empties the cart. It prefers the bulk endpoint, falls back to one
// delete per line, and finally clears local state regardless: completing
// a checkout is never blocked by a failure to clear the remote cart.
func (c *Cart) Clear(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.RLock()
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	c.mu.RUnlock()

	if err := c.api.ClearCart(ctx, c.cookie); err != nil {
		var wg sync.WaitGroup
		for _, l := range lines {
			wg.Add(1)
			go func(productID uint) {
				defer wg.Done()
				_ = c.api.RemoveCartItem(ctx, c.cookie, productID)
			}(l.ProductID)
		}
		wg.Wait()
	}

	c.setReady(nil)
}

// Checkout is invoked by the checkout flow after order placement has
// succeeded. Order creation itself is not this store's job.
func (c *Cart) Checkout(ctx context.Context) {
	c.Clear(ctx)
}

// refetch reconciles local state with the upstream after a mutation; the
// divergence is never silently kept.
func (c *Cart) refetch(ctx context.Context) {
	if !c.auth.IsAuthenticated() {
		c.setReady(nil)
		return
	}

	entries, err := c.api.Cart(ctx, c.cookie)
	if err != nil {
		// Keep the optimistic state; it is the best information we have.
		c.setStatus(CartReady)
		return
	}
	c.setReady(EnrichCart(ctx, c.api, c.cookie, entries))
}

func (c *Cart) setStatus(s CartStatus) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

func (c *Cart) setReady(lines []models.CartLine) {
	c.mu.Lock()
	c.lines = lines
	c.status = CartReady
	c.lastErr = ""
	c.mu.Unlock()
}

func (c *Cart) setError(msg string) {
	c.mu.Lock()
	c.status = CartError
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Cart) Status() CartStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Cart) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the sum of quantities over current lines.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Subtotal is Σ price×quantity over current lines. Placeholder lines have
// a zero price and contribute nothing.
func (c *Cart) Subtotal() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var sum float64
	for _, l := range c.lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

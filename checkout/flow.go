package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
	"github.com/Rolamaalouf/Mishatote-front/stores"
)

// State follows loading → {emptyCart | addressForm} → submitting →
// confirmed, dropping back to addressForm when a submission fails.
type State int

const (
	StateLoading State = iota
	StateEmptyCart
	StateAddressForm
	StateSubmitting
	StateConfirmed
)

var (
	// ErrLoginRequired sends the visitor to login with a redirect back
	// to checkout.
	ErrLoginRequired = errors.New("login required")

	// ErrSubmissionInFlight guards against double submits while a
	// request is pending.
	ErrSubmissionInFlight = errors.New("your order is already being placed")
)

// Summary is the order math shown next to the form.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"shipping"`
	Total       float64 `json:"total"`
}

// Flow drives one visitor's checkout. It owns a fresh idempotency key per
// flow so a retried submission after a timeout cannot create a second
// order.
type Flow struct {
	mu sync.Mutex

	api    *api.Client
	auth   *stores.Auth
	cart   *stores.Cart
	cookie string

	state          State
	address        models.Address
	deliveryFee    float64
	lines          []models.CartLine
	orderID        uint
	idempotencyKey string
}

func NewFlow(client *api.Client, auth *stores.Auth, cart *stores.Cart, cookie string) *Flow {
	return &Flow{
		api:    client,
		auth:   auth,
		cart:   cart,
		cookie: cookie,
		state:  StateLoading,
	}
}

// Load gathers the delivery fee, the visitor's saved address and the
// enriched cart concurrently. An empty cart short-circuits to the
// empty-cart state and no form is shown.
func (f *Flow) Load(ctx context.Context) error {
	if !f.auth.IsAuthenticated() {
		return ErrLoginRequired
	}

	f.mu.Lock()
	f.state = StateLoading
	f.mu.Unlock()

	var (
		wg       sync.WaitGroup
		shipping *models.Shipping
		user     *models.User
		entries  []models.CartEntry

		shippingErr, userErr, cartErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		shipping, shippingErr = f.api.Shipping(ctx)
	}()
	go func() {
		defer wg.Done()
		user, userErr = f.api.Me(ctx, f.cookie)
	}()
	go func() {
		defer wg.Done()
		entries, cartErr = f.api.Cart(ctx, f.cookie)
	}()
	wg.Wait()

	if err := firstErr(shippingErr, userErr, cartErr); err != nil {
		f.mu.Lock()
		f.state = StateAddressForm
		f.mu.Unlock()
		return fmt.Errorf("%s", api.Message(err, "Failed to load checkout data. Please try again."))
	}

	if len(entries) == 0 {
		f.mu.Lock()
		f.state = StateEmptyCart
		f.mu.Unlock()
		return nil
	}

	lines := stores.EnrichCart(ctx, f.api, f.cookie, entries)

	f.mu.Lock()
	f.lines = lines
	f.deliveryFee = shipping.DeliveryFee
	f.address = user.Address
	f.idempotencyKey = uuid.NewString()
	f.state = StateAddressForm
	f.mu.Unlock()
	return nil
}

// Submit validates, builds the order payload and posts it. For paytab the
// payload carries only the cardholder name and the last four digits; the
// full card number and CVV never leave this function.
func (f *Flow) Submit(ctx context.Context, addr models.Address, paymentMethod string, card CardDetails) (uint, error) {
	if err := ValidateAddress(addr); err != nil {
		return 0, err
	}
	if err := ValidatePayment(paymentMethod, card); err != nil {
		return 0, err
	}

	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return 0, ErrSubmissionInFlight
	}
	f.state = StateSubmitting
	f.address = addr
	key := f.idempotencyKey
	f.mu.Unlock()

	payload := models.CheckoutRequest{
		Address:       addr,
		PaymentMethod: paymentMethod,
	}
	if paymentMethod == models.PaymentPayTab {
		payload.Payment = &models.CardPayment{
			CardName: card.CardName,
			LastFour: card.CardNumber[len(card.CardNumber)-4:],
		}
	}

	res, err := f.api.Checkout(ctx, f.cookie, payload, key)
	if err != nil {
		// Back to the form; the cart is left intact for a retry.
		f.mu.Lock()
		f.state = StateAddressForm
		f.mu.Unlock()
		return 0, fmt.Errorf("%s", api.Message(err, "Failed to place your order. Please try again."))
	}

	f.mu.Lock()
	f.orderID = res.OrderID
	f.state = StateConfirmed
	f.mu.Unlock()

	f.cart.Checkout(ctx)
	return res.OrderID, nil
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Address returns the prefilled (or last submitted) address.
func (f *Flow) Address() models.Address {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.address
}

func (f *Flow) Lines() []models.CartLine {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CartLine, len(f.lines))
	copy(out, f.lines)
	return out
}

// Summary recomputes the totals from the loaded lines.
func (f *Flow) Summary() Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	var subtotal float64
	for _, l := range f.lines {
		subtotal += l.Price * float64(l.Quantity)
	}
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: f.deliveryFee,
		Total:       subtotal + f.deliveryFee,
	}
}

func (f *Flow) OrderID() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

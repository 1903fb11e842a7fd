package checkoutControllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/checkout"
	"github.com/Rolamaalouf/Mishatote-front/middleware"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

var stateLabels = map[checkout.State]string{
	checkout.StateLoading:     "loading",
	checkout.StateEmptyCart:   "emptyCart",
	checkout.StateAddressForm: "addressForm",
	checkout.StateSubmitting:  "submitting",
	checkout.StateConfirmed:   "confirmed",
}

// Controller keeps one checkout flow per session cookie, so the
// idempotency key survives a retried submission. Flows are evicted on
// successful submit and whenever the session registry drops the cookie
// (logout or idle sweep), never later.
type Controller struct {
	api *api.Client

	mu    sync.Mutex
	flows map[string]*checkout.Flow
}

func New(client *api.Client) *Controller {
	return &Controller{api: client, flows: make(map[string]*checkout.Flow)}
}

func (ct *Controller) storeFlow(cookie string, flow *checkout.Flow) {
	ct.mu.Lock()
	ct.flows[cookie] = flow
	ct.mu.Unlock()
}

func (ct *Controller) currentFlow(cookie string) *checkout.Flow {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.flows[cookie]
}

// DropFlow discards the flow for a cookie. Registered as a registry
// eviction hook so abandoned checkouts die with their session.
func (ct *Controller) DropFlow(cookie string) {
	ct.mu.Lock()
	delete(ct.flows, cookie)
	ct.mu.Unlock()
}

func flowView(flow *checkout.Flow) gin.H {
	return gin.H{
		"state":   stateLabels[flow.State()],
		"address": flow.Address(),
		"items":   flow.Lines(),
		"summary": flow.Summary(),
	}
}

// GET /checkout
//
// Starts a fresh flow: fee + saved address + enriched cart, fanned out
// concurrently. Anonymous visitors bounce to login and back.
func (ct *Controller) Begin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		cookie := middleware.CookieFrom(c)

		flow := checkout.NewFlow(ct.api, sess.Auth, sess.Cart, cookie)
		if err := flow.Load(c.Request.Context()); err != nil {
			if errors.Is(err, checkout.ErrLoginRequired) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":    "Please log in to continue",
					"redirect": "/login?redirect=/checkout",
				})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		ct.storeFlow(cookie, flow)
		c.JSON(http.StatusOK, flowView(flow))
	}
}

type submitInput struct {
	Address       models.Address `json:"address"`
	PaymentMethod string         `json:"paymentMethod" binding:"required,oneof=cod paytab"`
	Payment       struct {
		CardName   string `json:"cardName"`
		CardNumber string `json:"cardNumber"`
		ExpDate    string `json:"expDate"`
		CVV        string `json:"cvv"`
	} `json:"payment"`
}

// POST /checkout
func (ct *Controller) Submit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in submitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess := middleware.SessionFrom(c)
		cookie := middleware.CookieFrom(c)

		flow := ct.currentFlow(cookie)
		if flow == nil {
			// Direct submit without a prior page load; build the flow now.
			flow = checkout.NewFlow(ct.api, sess.Auth, sess.Cart, cookie)
			if err := flow.Load(c.Request.Context()); err != nil {
				if errors.Is(err, checkout.ErrLoginRequired) {
					c.JSON(http.StatusUnauthorized, gin.H{
						"error":    "Please log in to continue",
						"redirect": "/login?redirect=/checkout",
					})
					return
				}
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			ct.storeFlow(cookie, flow)
		}

		if flow.State() == checkout.StateEmptyCart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		card := checkout.CardDetails{
			CardName:   in.Payment.CardName,
			CardNumber: in.Payment.CardNumber,
			ExpDate:    in.Payment.ExpDate,
			CVV:        in.Payment.CVV,
		}
		orderID, err := flow.Submit(c.Request.Context(), in.Address, in.PaymentMethod, card)
		if err != nil {
			var valErr *checkout.ValidationError
			switch {
			case errors.As(err, &valErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message, "field": valErr.Field})
			case errors.Is(err, checkout.ErrSubmissionInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			}
			return
		}

		ct.DropFlow(cookie)
		c.JSON(http.StatusCreated, gin.H{
			"state":    stateLabels[checkout.StateConfirmed],
			"order_id": orderID,
			"message":  "Your order has been placed successfully!",
		})
	}
}

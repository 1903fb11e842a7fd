package checkout

import (
	"regexp"

	"github.com/Rolamaalouf/Mishatote-front/models"
)

// ValidationError blocks a submission before anything is sent upstream.
// Validation stops at the first failing field; the UI shows one error at
// a time.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	phonePattern      = regexp.MustCompile(`^\+[0-9]{10,15}$`)
	floorPattern      = regexp.MustCompile(`^[0-9]{1,3}$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	expDatePattern    = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

type fieldRule struct {
	field   string
	value   string
	pattern *regexp.Regexp
	empty   string
	invalid string
}

func checkFields(rules []fieldRule) error {
	for _, r := range rules {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: r.empty}
		}
		if r.pattern != nil && !r.pattern.MatchString(r.value) {
			return &ValidationError{Field: r.field, Message: r.invalid}
		}
	}
	return nil
}

// ValidateAddress must pass regardless of the payment method.
func ValidateAddress(addr models.Address) error {
	return checkFields([]fieldRule{
		{
			field:   "phone",
			value:   addr.Phone,
			pattern: phonePattern,
			empty:   "Phone number is required",
			invalid: "Phone number must start with + and contain 10-15 digits",
		},
		{
			field: "region",
			value: addr.Region,
			empty: "Please select your region",
		},
		{
			field: "address-direction",
			value: addr.AddressDirection,
			empty: "Please provide detailed address directions for delivery",
		},
		{
			field: "building",
			value: addr.Building,
			empty: "Building name/number is required for delivery",
		},
		{
			field:   "floor",
			value:   addr.Floor,
			pattern: floorPattern,
			empty:   "Floor number is required",
			invalid: "Floor number must be a valid number (1-999)",
		},
	})
}

// CardDetails exists only transiently for validation. Everything except
// the cardholder name and the last four digits is discarded before the
// order payload is built.
type CardDetails struct {
	CardName   string
	CardNumber string
	ExpDate    string
	CVV        string
}

// ValidatePayment is skipped entirely for cash on delivery.
func ValidatePayment(paymentMethod string, card CardDetails) error {
	if paymentMethod != models.PaymentPayTab {
		return nil
	}
	return checkFields([]fieldRule{
		{
			field: "cardName",
			value: card.CardName,
			empty: "Cardholder name is required",
		},
		{
			field:   "cardNumber",
			value:   card.CardNumber,
			pattern: cardNumberPattern,
			empty:   "Card number is required",
			invalid: "Card number must be 16 digits with no spaces or dashes",
		},
		{
			field:   "expDate",
			value:   card.ExpDate,
			pattern: expDatePattern,
			empty:   "Card expiration date is required",
			invalid: "Expiration date must be in MM/YY format (e.g., 05/25)",
		},
		{
			field:   "cvv",
			value:   card.CVV,
			pattern: cvvPattern,
			empty:   "Security code (CVV) is required",
			invalid: "CVV must be 3-4 digits found on the back of your card",
		},
	})
}

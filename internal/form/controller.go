// Package form is the order-form controller: live field validation, input
// filtering, quantity clamping, summary recomputation, and the submit
// protocol. It performs the same checks the service repeats server-side;
// this pass exists for responsiveness, the server's pass is authoritative.
package form

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/internal/validation"
)

// Field names, matching the form input names on the page
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldComment  = "comment"
	FieldQuantity = "quantity"
	FieldProduct  = "product"
)

// DefaultProduct is the pre-selected bottle size
const DefaultProduct = "0.5"

// debounceDelay is how long the controller waits after the last keystroke
// before validating a field
const debounceDelay = 300 * time.Millisecond

// Submitter posts a completed order to the intake service
type Submitter interface {
	SubmitOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error)
}

// Notifier shows transient feedback to the user
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Controller holds the form state. Safe for concurrent use, though a page
// only ever drives it from one goroutine plus debounce timers.
type Controller struct {
	mu        sync.Mutex
	msgs      Messages
	submitter Submitter
	notifier  Notifier
	debouncer *Debouncer

	values    map[string]string
	fieldErrs map[string]string
	product   string
	quantity  int
	source    string

	submitting  bool
	submitLabel string
}

// NewController creates a form controller with defaults matching the page:
// smallest bottle selected, quantity 1.
func NewController(msgs Messages, submitter Submitter, notifier Notifier) *Controller {
	return &Controller{
		msgs:        msgs,
		submitter:   submitter,
		notifier:    notifier,
		debouncer:   NewDebouncer(debounceDelay),
		values:      make(map[string]string),
		fieldErrs:   make(map[string]string),
		product:     DefaultProduct,
		quantity:    validation.MinQuantity,
		source:      models.DefaultSource,
		submitLabel: MsgSubmitLabel,
	}
}

// SetLanguage swaps the validation message table (ru/ky switcher)
func (c *Controller) SetLanguage(msgs Messages) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = msgs
}

// SetField records a field value as the user types. Phone input is filtered
// and formatted live; validation runs debounced.
func (c *Controller) SetField(field, value string) {
	c.mu.Lock()
	if field == FieldPhone {
		value = FormatPhoneNumber(FilterPhoneInput(value))
	}
	c.values[field] = value
	c.mu.Unlock()

	c.debouncer.Trigger(field, func() {
		c.ValidateField(field)
	})
}

// Field returns the current value of a field
func (c *Controller) Field(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field]
}

// FieldError returns the current validation message for a field, empty when
// the field is valid
func (c *Controller) FieldError(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrs[field]
}

// ValidateField applies the per-field rule and records the outcome
func (c *Controller) ValidateField(field string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateFieldLocked(field)
}

func (c *Controller) validateFieldLocked(field string) bool {
	value := validation.Sanitize(c.values[field])

	var ok bool
	var msg string
	switch field {
	case FieldEmail:
		ok = validation.ValidEmail(value)
		msg = c.msgs.Email
	case FieldPhone:
		ok = validation.ValidPhone(value)
		msg = c.msgs.Phone
	case FieldComment:
		// Optional field, always valid
		ok = true
	default:
		ok = value != ""
		msg = c.msgs.Required
	}

	if ok {
		delete(c.fieldErrs, field)
	} else {
		c.fieldErrs[field] = msg
	}
	return ok
}

// SelectProduct switches the selected bottle size
func (c *Controller) SelectProduct(size string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.product = size
}

// Product returns the selected bottle size
func (c *Controller) Product() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.product
}

// SetQuantity applies direct numeric entry. Out-of-range or unparseable
// input is clamped to the nearest bound, not rejected.
func (c *Controller) SetQuantity(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, err := validation.ParseQuantity(raw)
	if err != nil {
		q = validation.MinQuantity
	}
	c.quantity = validation.ClampQuantity(q)
}

// IncrementQuantity is the "+" stepper, capped at the maximum
func (c *Controller) IncrementQuantity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quantity < validation.MaxQuantity {
		c.quantity++
	}
}

// DecrementQuantity is the "-" stepper, floored at the minimum
func (c *Controller) DecrementQuantity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quantity > validation.MinQuantity {
		c.quantity--
	}
}

// Quantity returns the current quantity
func (c *Controller) Quantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantity
}

// Summary recomputes the order side panel from the current selection
func (c *Controller) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BuildSummary(c.product, c.quantity)
}

// Submitting reports whether a submission is in flight (the submit control
// is disabled while true)
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// SubmitLabel returns the current submit control label
func (c *Controller) SubmitLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitLabel
}

// Submit runs the submit protocol: re-validate everything synchronously,
// abort on any failure, otherwise send exactly one request and report the
// outcome. The submit control is re-enabled no matter what happens.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return false
	}

	valid := true
	for _, field := range []string{FieldName, FieldPhone, FieldEmail, FieldComment} {
		if !c.validateFieldLocked(field) {
			valid = false
		}
	}
	if !validation.ValidQuantity(c.quantity) {
		valid = false
	}

	if !valid {
		c.mu.Unlock()
		c.notifier.Error(MsgFixFormErrors)
		return false
	}

	c.submitting = true
	c.submitLabel = MsgSending
	req := c.buildRequestLocked()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.submitLabel = MsgSubmitLabel
		c.mu.Unlock()
	}()

	resp, err := c.submitter.SubmitOrder(ctx, req)
	if err != nil || !resp.Success {
		// Transport and server failures are indistinguishable here; the
		// form keeps its values so the user can retry
		c.notifier.Error(MsgSubmitFailed)
		return false
	}

	c.notifier.Success(MsgOrderSuccess)
	c.Reset()
	return true
}

func (c *Controller) buildRequestLocked() *models.OrderRequest {
	return &models.OrderRequest{
		Name:     validation.Sanitize(c.values[FieldName]),
		Phone:    validation.Sanitize(c.values[FieldPhone]),
		Email:    validation.Sanitize(c.values[FieldEmail]),
		Product:  c.product,
		Quantity: models.FlexString(strconv.Itoa(c.quantity)),
		Comment:  validation.Sanitize(c.values[FieldComment]),
		Source:   c.source,
	}
}

// Reset clears the form back to its defaults, as after a successful order
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = make(map[string]string)
	c.fieldErrs = make(map[string]string)
	c.product = DefaultProduct
	c.quantity = validation.MinQuantity
}

package form_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/emel-water/emel-api/internal/form"
	"github.com/emel-water/emel-api/internal/models"
	"github.com/stretchr/testify/assert"
)

type fakeSubmitter struct {
	mu       sync.Mutex
	requests []*models.OrderRequest
	resp     *models.OrderResponse
	err      error
	block    chan struct{} // when set, Send blocks until closed
}

func (s *fakeSubmitter) SubmitOrder(_ context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func fillValid(c *form.Controller) {
	c.SetField(form.FieldName, "Айдана")
	c.SetField(form.FieldPhone, "0700123456")
	c.SetField(form.FieldEmail, "aidana@example.com")
}

func TestController_Defaults(t *testing.T) {
	c := form.NewController(form.RU, &fakeSubmitter{}, &fakeNotifier{})

	assert.Equal(t, form.DefaultProduct, c.Product())
	assert.Equal(t, 1, c.Quantity())
	assert.Equal(t, form.MsgSubmitLabel, c.SubmitLabel())
	assert.False(t, c.Submitting())
}

func TestController_PhoneInputFilteredAndFormatted(t *testing.T) {
	c := form.NewController(form.RU, &fakeSubmitter{}, &fakeNotifier{})

	c.SetField(form.FieldPhone, "07oo00123456abc")
	assert.Equal(t, "+996 (070) 012 34 56", c.Field(form.FieldPhone))
}

func TestController_ValidateField(t *testing.T) {
	c := form.NewController(form.RU, &fakeSubmitter{}, &fakeNotifier{})

	c.SetField(form.FieldEmail, "bad")
	assert.False(t, c.ValidateField(form.FieldEmail))
	assert.Equal(t, form.RU.Email, c.FieldError(form.FieldEmail))

	c.SetField(form.FieldEmail, "a@b.c")
	assert.True(t, c.ValidateField(form.FieldEmail))
	assert.Empty(t, c.FieldError(form.FieldEmail))

	assert.False(t, c.ValidateField(form.FieldName))
	assert.Equal(t, form.RU.Required, c.FieldError(form.FieldName))

	// Comment is optional and never errors
	assert.True(t, c.ValidateField(form.FieldComment))
}

func TestController_KyrgyzMessages(t *testing.T) {
	c := form.NewController(form.KY, &fakeSubmitter{}, &fakeNotifier{})

	c.SetField(form.FieldEmail, "bad")
	c.ValidateField(form.FieldEmail)
	assert.Equal(t, form.KY.Email, c.FieldError(form.FieldEmail))

	c.SetLanguage(form.RU)
	c.ValidateField(form.FieldEmail)
	assert.Equal(t, form.RU.Email, c.FieldError(form.FieldEmail))
}

func TestController_QuantityClamping(t *testing.T) {
	c := form.NewController(form.RU, &fakeSubmitter{}, &fakeNotifier{})

	c.SetQuantity("5")
	assert.Equal(t, 5, c.Quantity())

	c.SetQuantity("0")
	assert.Equal(t, 1, c.Quantity())

	c.SetQuantity("101")
	assert.Equal(t, 100, c.Quantity())

	c.SetQuantity("not a number")
	assert.Equal(t, 1, c.Quantity())
}

func TestController_QuantitySteppers(t *testing.T) {
	c := form.NewController(form.RU, &fakeSubmitter{}, &fakeNotifier{})

	c.IncrementQuantity()
	c.IncrementQuantity()
	assert.Equal(t, 3, c.Quantity())

	c.DecrementQuantity()
	assert.Equal(t, 2, c.Quantity())

	c.SetQuantity("1")
	c.DecrementQuantity()
	assert.Equal(t, 1, c.Quantity())

	c.SetQuantity("100")
	c.IncrementQuantity()
	assert.Equal(t, 100, c.Quantity())
}

func TestController_SummaryTracksSelection(t *testing.T) {
	c := form.NewController(form.RU, &fakeSubmitter{}, &fakeNotifier{})

	c.SelectProduct("1.5")
	c.SetQuantity("4")

	s := c.Summary()
	assert.Equal(t, "1.5 л x 4 шт.", s.Product)
	assert.Equal(t, "400 сом", s.Total)
}

func TestController_Submit(t *testing.T) {
	submitter := &fakeSubmitter{resp: &models.OrderResponse{Success: true}}
	notifier := &fakeNotifier{}
	c := form.NewController(form.RU, submitter, notifier)

	fillValid(c)
	c.SelectProduct("1")
	c.SetQuantity("3")
	c.SetField(form.FieldComment, "после обеда")

	ok := c.Submit(context.Background())
	assert.True(t, ok)

	assert.Len(t, submitter.requests, 1)
	req := submitter.requests[0]
	assert.Equal(t, "Айдана", req.Name)
	assert.Equal(t, "+996 (070) 012 34 56", req.Phone)
	assert.Equal(t, "aidana@example.com", req.Email)
	assert.Equal(t, "1", req.Product)
	assert.Equal(t, "3", req.Quantity.String())
	assert.Equal(t, "после обеда", req.Comment)
	assert.Equal(t, models.DefaultSource, req.Source)

	assert.Equal(t, []string{form.MsgOrderSuccess}, notifier.successes)

	// The form resets after a successful order
	assert.Empty(t, c.Field(form.FieldName))
	assert.Equal(t, form.DefaultProduct, c.Product())
	assert.Equal(t, 1, c.Quantity())
	assert.False(t, c.Submitting())
	assert.Equal(t, form.MsgSubmitLabel, c.SubmitLabel())
}

func TestController_Submit_InvalidForm(t *testing.T) {
	submitter := &fakeSubmitter{resp: &models.OrderResponse{Success: true}}
	notifier := &fakeNotifier{}
	c := form.NewController(form.RU, submitter, notifier)

	c.SetField(form.FieldName, "Айдана")
	c.SetField(form.FieldEmail, "bad")

	ok := c.Submit(context.Background())
	assert.False(t, ok)
	assert.Empty(t, submitter.requests)
	assert.Equal(t, []string{form.MsgFixFormErrors}, notifier.errors)

	// Field errors are recorded for display
	assert.Equal(t, form.RU.Email, c.FieldError(form.FieldEmail))
	assert.Equal(t, form.RU.Required, c.FieldError(form.FieldPhone))
}

func TestController_Submit_ServerRejects(t *testing.T) {
	submitter := &fakeSubmitter{resp: &models.OrderResponse{Success: false}}
	notifier := &fakeNotifier{}
	c := form.NewController(form.RU, submitter, notifier)

	fillValid(c)

	ok := c.Submit(context.Background())
	assert.False(t, ok)
	assert.Equal(t, []string{form.MsgSubmitFailed}, notifier.errors)

	// Values stay so the user can retry
	assert.Equal(t, "Айдана", c.Field(form.FieldName))
	assert.False(t, c.Submitting())
	assert.Equal(t, form.MsgSubmitLabel, c.SubmitLabel())
}

func TestController_Submit_TransportError(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	c := form.NewController(form.RU, submitter, notifier)

	fillValid(c)

	ok := c.Submit(context.Background())
	assert.False(t, ok)
	assert.Equal(t, []string{form.MsgSubmitFailed}, notifier.errors)
	assert.Equal(t, "Айдана", c.Field(form.FieldName))
}

func TestController_Submit_SingleFlight(t *testing.T) {
	submitter := &fakeSubmitter{
		resp:  &models.OrderResponse{Success: true},
		block: make(chan struct{}),
	}
	notifier := &fakeNotifier{}
	c := form.NewController(form.RU, submitter, notifier)

	fillValid(c)

	done := make(chan bool, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()

	// Wait for the first submission to be in flight
	assert.Eventually(t, c.Submitting, time.Second, 5*time.Millisecond)
	assert.Equal(t, form.MsgSending, c.SubmitLabel())

	// A second submit while in flight is ignored
	assert.False(t, c.Submit(context.Background()))

	close(submitter.block)
	assert.True(t, <-done)
	assert.Len(t, submitter.requests, 1)
}

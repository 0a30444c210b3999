// Package validation implements the order-form field rules. The service runs
// the same checks the form controller runs; the service's pass is the
// authoritative one and is never bypassed.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/internal/pricing"
)

const (
	MinQuantity = 1
	MaxQuantity = 100

	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

// Russian error strings shown to buyers, matching the website copy
const (
	MsgInvalidEmail    = "Некорректный email адрес"
	MsgInvalidPhone    = "Некорректный номер телефона"
	MsgInvalidQuantity = "Количество должно быть от 1 до 100"
	MsgInvalidProduct  = "Некорректный продукт"
)

// MsgRequiredField names the missing field the way the site always has,
// with the raw field key rather than a localized label
func MsgRequiredField(field string) string {
	return fmt.Sprintf("Поле %s обязательно для заполнения", field)
}

var (
	// Deliberately simple shape check: local@domain.tld with no whitespace
	// or extra @ runs. "a@b.c" passes.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigits = regexp.MustCompile(`\D`)
)

// Sanitize strips angle brackets and trims whitespace. A minimal guard against
// HTML injection in rendered notifications, not full sanitization. Idempotent.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// DigitsOnly strips every non-digit character
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidEmail reports whether the value matches the email shape
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether the digits-only form has an acceptable length
func ValidPhone(s string) bool {
	n := len(DigitsOnly(s))
	return n >= MinPhoneDigits && n <= MaxPhoneDigits
}

// ValidQuantity reports whether a parsed quantity is in range
func ValidQuantity(q int) bool {
	return q >= MinQuantity && q <= MaxQuantity
}

// ParseQuantity parses a quantity submitted as text
func ParseQuantity(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ClampQuantity forces a quantity to the nearest bound. Used by the form
// controller, which corrects out-of-range input instead of rejecting it.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// ValidateOrder runs every rule and returns all violations. An empty slice
// means the order is acceptable.
func ValidateOrder(req *models.OrderRequest) []string {
	var errs []string

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"email", req.Email},
		{"product", req.Product},
		{"quantity", req.Quantity.String()},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, MsgRequiredField(f.field))
		}
	}

	if req.Email != "" && !ValidEmail(req.Email) {
		errs = append(errs, MsgInvalidEmail)
	}

	if req.Phone != "" && !ValidPhone(req.Phone) {
		errs = append(errs, MsgInvalidPhone)
	}

	if q, err := ParseQuantity(req.Quantity.String()); err != nil || !ValidQuantity(q) {
		errs = append(errs, MsgInvalidQuantity)
	}

	if req.Product != "" && !pricing.Known(req.Product) {
		errs = append(errs, MsgInvalidProduct)
	}

	return errs
}

// SanitizeOrder returns a copy of the request with every text field sanitized
func SanitizeOrder(req *models.OrderRequest) *models.OrderRequest {
	return &models.OrderRequest{
		Name:     Sanitize(req.Name),
		Phone:    Sanitize(req.Phone),
		Email:    Sanitize(req.Email),
		Product:  Sanitize(req.Product),
		Quantity: models.FlexString(Sanitize(req.Quantity.String())),
		Comment:  Sanitize(req.Comment),
		Source:   Sanitize(req.Source),
	}
}

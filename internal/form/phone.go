package form

import (
	"fmt"
	"strings"

	"github.com/emel-water/emel-api/internal/validation"
)

// FilterPhoneInput drops characters a phone number can't contain, applied on
// every keystroke so junk never reaches the field value
func FilterPhoneInput(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhoneNumber pretty-prints a clean 10-digit local number in the
// +996 (XXX) XXX XX XX mask. Anything else is returned untouched; display
// formatting never affects validation, which only counts digits.
func FormatPhoneNumber(s string) string {
	digits := validation.DigitsOnly(s)
	if len(digits) != 10 {
		return s
	}
	return fmt.Sprintf("+996 (%s) %s %s %s",
		digits[0:3], digits[3:6], digits[6:8], digits[8:10])
}

package form_test

import (
	"testing"

	"github.com/emel-water/emel-api/internal/form"
	"github.com/stretchr/testify/assert"
)

func TestFilterPhoneInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"digits pass through", "0700123456", "0700123456"},
		{"allowed punctuation kept", "+996 (700) 123-45-67", "+996 (700) 123-45-67"},
		{"letters dropped", "070abc0123456", "0700123456"},
		{"mixed junk dropped", "07!00#12_34тел56", "0700123456"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, form.FilterPhoneInput(tt.input))
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ten digits formatted", "0700123456", "+996 (070) 012 34 56"},
		{"already formatted ten digits", "070 012 34 56", "+996 (070) 012 34 56"},
		{"nine digits untouched", "070012345", "070012345"},
		{"eleven digits untouched", "07001234567", "07001234567"},
		{"international form untouched", "+996700123456", "+996700123456"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, form.FormatPhoneNumber(tt.input))
		})
	}
}

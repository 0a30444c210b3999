package form_test

import (
	"testing"

	"github.com/emel-water/emel-api/internal/form"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	s := form.BuildSummary("0.5", 2)
	assert.Equal(t, "0.5 л x 2 шт.", s.Product)
	assert.Equal(t, "50 сом", s.Price)
	assert.Equal(t, "100 сом", s.Total)

	s = form.BuildSummary("1.5", 10)
	assert.Equal(t, "1.5 л x 10 шт.", s.Product)
	assert.Equal(t, "100 сом", s.Price)
	assert.Equal(t, "1000 сом", s.Total)
}

func TestBuildSummary_UnknownProduct(t *testing.T) {
	s := form.BuildSummary("5", 3)
	assert.Equal(t, "5 л x 3 шт.", s.Product)
	assert.Equal(t, "0 сом", s.Price)
	assert.Equal(t, "0 сом", s.Total)
}

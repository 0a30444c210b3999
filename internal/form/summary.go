package form

import (
	"fmt"

	"github.com/emel-water/emel-api/internal/pricing"
)

// Summary is the order side-panel content, recomputed whenever the selected
// product or quantity changes
type Summary struct {
	Product string
	Price   string
	Total   string
}

// BuildSummary renders the summary lines from the fixed price table. An
// unknown product shows a zero price rather than failing.
func BuildSummary(product string, quantity int) Summary {
	price := pricing.Price(product)
	return Summary{
		Product: fmt.Sprintf("%s л x %d шт.", product, quantity),
		Price:   fmt.Sprintf("%d %s", price, pricing.Currency),
		Total:   fmt.Sprintf("%d %s", price*quantity, pricing.Currency),
	}
}

// Package pricing holds the fixed product price table shared by the form
// controller and the intake service. Both sides must compute the same totals.
package pricing

// Currency is the display currency for all prices
const Currency = "сом"

// prices maps bottle size (liters) to unit price
var prices = map[string]int{
	"0.5": 50,
	"1":   80,
	"1.5": 100,
}

// Table returns a copy of the product price table
func Table() map[string]int {
	out := make(map[string]int, len(prices))
	for k, v := range prices {
		out[k] = v
	}
	return out
}

// Price returns the unit price for a product size, 0 for unknown sizes
func Price(size string) int {
	return prices[size]
}

// Known reports whether the product size exists in the price table
func Known(size string) bool {
	_, ok := prices[size]
	return ok
}

// Total computes price * quantity for a product size
func Total(size string, quantity int) int {
	return Price(size) * quantity
}

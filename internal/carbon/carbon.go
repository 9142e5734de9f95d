// Package carbon estimates the CO2 generated by spending in a category.
package carbon

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Food          = "food"
	Transport     = "transport"
	Shopping      = "shopping"
	Bills         = "bills"
	Entertainment = "entertainment"
	Default       = "default"
)

// Category is a spending category with its emission factor in kg CO2e per
// 1000 currency units spent.
type Category struct {
	Value  string
	Label  string
	Factor float64
}

var categories = []Category{
	{Value: Food, Label: "Food & Dining", Factor: 0.8},
	{Value: Transport, Label: "Transport", Factor: 1.2},
	{Value: Shopping, Label: "Shopping", Factor: 0.6},
	{Value: Bills, Label: "Bills & Utilities", Factor: 0.3},
	{Value: Entertainment, Label: "Entertainment", Factor: 0.4},
	{Value: Default, Label: "Other", Factor: 0.5},
}

type Estimate struct {
	CO2Emission float64 `json:"co2Emission"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup resolves a category value. Unknown values resolve to Default.
func Lookup(value string) Category {
	for _, c := range categories {
		if c.Value == value {
			return c
		}
	}
	return categories[len(categories)-1]
}

// Factor returns the emission factor for a category value.
func Factor(value string) float64 {
	return Lookup(value).Factor
}

// Compute returns the estimate for amount spent in category. ok is false when
// the amount is not a positive finite number; no estimate exists then.
func Compute(amount float64, category string) (Estimate, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Estimate{}, false
	}

	c := Lookup(category)
	co2 := (amount / 1000) * c.Factor

	return Estimate{
		CO2Emission: math.Round(co2*100) / 100,
		Category:    c.Label,
		Description: fmt.Sprintf("Carbon generated from this %s transaction", strings.ToLower(c.Label)),
	}, true
}

// ParseAmount reads a user supplied amount. ok is false for empty,
// non-numeric or non-positive input.
func ParseAmount(s string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// FromInput parses the raw amount and computes the estimate.
func FromInput(amount, category string) (Estimate, bool) {
	value, ok := ParseAmount(amount)
	if !ok {
		return Estimate{}, false
	}
	return Compute(value, category)
}

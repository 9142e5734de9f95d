package carbon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                string
		amount              float64
		category            string
		expectedOK          bool
		expectedCO2         float64
		expectedLabel       string
		expectedDescription string
	}{
		{
			name:                "Food",
			amount:              1000,
			category:            Food,
			expectedOK:          true,
			expectedCO2:         0.8,
			expectedLabel:       "Food & Dining",
			expectedDescription: "Carbon generated from this food & dining transaction",
		},
		{
			name:                "Transport",
			amount:              5000,
			category:            Transport,
			expectedOK:          true,
			expectedCO2:         6.0,
			expectedLabel:       "Transport",
			expectedDescription: "Carbon generated from this transport transaction",
		},
		{
			name:          "Bills rounds to two decimals",
			amount:        1234,
			category:      Bills,
			expectedOK:    true,
			expectedCO2:   0.37,
			expectedLabel: "Bills & Utilities",
		},
		{
			name:          "Unknown category falls back to default",
			amount:        2000,
			category:      "groceries",
			expectedOK:    true,
			expectedCO2:   1.0,
			expectedLabel: "Other",
		},
		{
			name:       "Zero amount",
			amount:     0,
			category:   Food,
			expectedOK: false,
		},
		{
			name:       "Negative amount",
			amount:     -100,
			category:   Food,
			expectedOK: false,
		},
		{
			name:       "NaN amount",
			amount:     math.NaN(),
			category:   Food,
			expectedOK: false,
		},
		{
			name:       "Infinite amount",
			amount:     math.Inf(1),
			category:   Food,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate, ok := Compute(tt.amount, tt.category)

			require.Equal(t, tt.expectedOK, ok)
			if !tt.expectedOK {
				assert.Equal(t, Estimate{}, estimate)
				return
			}
			assert.Equal(t, tt.expectedCO2, estimate.CO2Emission)
			assert.Equal(t, tt.expectedLabel, estimate.Category)
			if tt.expectedDescription != "" {
				assert.Equal(t, tt.expectedDescription, estimate.Description)
			}
		})
	}
}

func TestCompute_MatchesFormula(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	factors := map[string]float64{
		Food:          0.8,
		Transport:     1.2,
		Shopping:      0.6,
		Bills:         0.3,
		Entertainment: 0.4,
		Default:       0.5,
	}

	for i := 0; i < 1000; i++ {
		amount := rnd.Float64()*1_000_000 + 0.01
		for category, factor := range factors {
			estimate, ok := Compute(amount, category)
			require.True(t, ok)

			expected := math.Round((amount/1000)*factor*100) / 100
			assert.Equal(t, expected, estimate.CO2Emission, "amount=%v category=%s", amount, category)

			again, _ := Compute(amount, category)
			assert.Equal(t, estimate, again, "estimation must not depend on hidden state")
		}
	}
}

func TestFactor(t *testing.T) {
	assert.Equal(t, 0.8, Factor(Food))
	assert.Equal(t, 1.2, Factor(Transport))
	assert.Equal(t, 0.6, Factor(Shopping))
	assert.Equal(t, 0.3, Factor(Bills))
	assert.Equal(t, 0.4, Factor(Entertainment))
	assert.Equal(t, 0.5, Factor(Default))
	assert.Equal(t, 0.5, Factor(""))
}

func TestCategories(t *testing.T) {
	list := Categories()
	require.Len(t, list, 6)
	assert.Equal(t, Food, list[0].Value)
	assert.Equal(t, Default, list[5].Value)

	list[0].Factor = 99
	assert.Equal(t, 0.8, Factor(Food), "callers must not be able to change factors")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input      string
		expected   float64
		expectedOK bool
	}{
		{input: "1000", expected: 1000, expectedOK: true},
		{input: " 2500.50 ", expected: 2500.5, expectedOK: true},
		{input: "0", expectedOK: false},
		{input: "-5", expectedOK: false},
		{input: "", expectedOK: false},
		{input: "abc", expectedOK: false},
		{input: "12abc", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestFromInput(t *testing.T) {
	estimate, ok := FromInput("1000", Food)
	require.True(t, ok)
	assert.Equal(t, 0.8, estimate.CO2Emission)

	_, ok = FromInput("0", Food)
	assert.False(t, ok)
}

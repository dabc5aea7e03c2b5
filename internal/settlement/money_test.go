package settlement

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "45.00", 45.00},
		{"currency prefix", "$45.00", 45.00},
		{"comma grouped", "1,234.56", 1234.56},
		{"currency and commas", "$12,345,678.90", 12345678.90},
		{"parenthesized negative", "(45.00)", -45.00},
		{"parenthesized with currency", "($1,234.56)", -1234.56},
		{"explicit minus", "-45.00", -45.00},
		{"interior whitespace", "$ 1,234.56", 1234.56},
		{"integer", "524", 524},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseAmountMalformed(t *testing.T) {
	for _, input := range []string{"", "$", "()", "abc", "12..5", "$-"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := ParseAmount(input)
			assert.ErrorIs(t, err, ErrMalformedNumber)
		})
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	// Formatting a parsed value the way the documents print it must parse
	// back to the same amount.
	for _, amount := range []float64{0, 45, -45, 1234.56, -9876.54, 999999.99} {
		formatted := fmt.Sprintf("$%.2f", amount)
		if amount < 0 {
			formatted = fmt.Sprintf("($%.2f)", -amount)
		}
		got, err := ParseAmount(formatted)
		require.NoError(t, err, "input %q", formatted)
		assert.InDelta(t, amount, got, 0.001, "input %q", formatted)
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		sign          string
		parenthesized bool
		want          float64
	}{
		{"positive", "45.00", "", false, 45.00},
		{"sign token", "45.00", "-", false, -45.00},
		{"paren pair", "45.00", "", true, -45.00},
		{"both indicators negate once", "45.00", "-", true, -45.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := signedAmount(tt.body, tt.sign, tt.parenthesized)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

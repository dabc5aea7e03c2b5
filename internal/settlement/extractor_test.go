package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBalanceDue(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"plain", "Weekly Settlement Balance due: $1,234.56 Thank you", 1234.56, true},
		{"no currency symbol", "Balance due: 980.00", 980.00, true},
		{"parenthesized negative", "Balance due: ($45.00)", -45.00, true},
		{"explicit sign before currency", "Balance due: -$45.00", -45.00, true},
		{"sign after currency", "Balance due: $-45.00", -45.00, true},
		{"case insensitive", "BALANCE DUE: $12.00", 12.00, true},
		{"label split by line wrap", "Balance due : $500.25", 500.25, true},
		{"first match wins", "Balance due: $100.00 Balance due: $200.00", 100.00, true},
		{"absent", "Total settlement $1,000.00", 0, false},
		{"label without amount", "Balance due noted on next page", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBalanceDue(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestExtractMiles(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"empty plus loaded", "Empty Loaded Subtotal: 524 2427 Fuel", 2951, true},
		{"first subtotal wins", "Subtotal: 100 200 later Subtotal: 1 1", 300, true},
		{"single integer is not a mileage line", "Subtotal: 524", 0, false},
		{"currency subtotal does not match", "Subtotal: 1,234.55", 0, false},
		{"absent", "no mileage figures here", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractMiles(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractTolls(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"negative with sign", "Tolls I-80 EZPass 12.40 Subtotal -$124.55", -124.55, true},
		{"parenthesized", "Tolls charges Subtotal ($124.55)", -124.55, true},
		{"positive with colon", "Tolls Subtotal: $36.80", 36.80, true},
		{"nearest subtotal", "Tolls a b c Subtotal $10.00 Deductions Subtotal $99.00", 10.00, true},
		{"absent label", "Subtotal $10.00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTolls(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestExtractExpenses(t *testing.T) {
	got, ok := ExtractExpenses("Deductions Truck wash 45.00 Scale 12.00 Subtotal: ($257.13)")
	require.True(t, ok)
	assert.InDelta(t, -257.13, got, 0.001)

	_, ok = ExtractExpenses("Tolls Subtotal: $10.00")
	assert.False(t, ok)

	// colon is required for the deductions subtotal
	_, ok = ExtractExpenses("Deductions Subtotal $10.00")
	assert.False(t, ok)
}

func TestExtractPickupRange(t *testing.T) {
	text := "Load Pickup Delivery " +
		"48213 01/05/24 01/07/24 " +
		"48377 01/12/24 01/14/24 " +
		"48490 01/19/24 01/21/24"

	display, ok := ExtractPickupRange(text)
	require.True(t, ok)
	assert.Equal(t, "01/05/24 - 01/19/24", display)
}

func TestExtractPickupRangeSingleRow(t *testing.T) {
	display, ok := ExtractPickupRange("48213 01/05/24 01/07/24")
	require.True(t, ok)
	assert.Equal(t, "01/05/24 - 01/05/24", display)
}

func TestExtractPickupRangeAbsent(t *testing.T) {
	_, ok := ExtractPickupRange("no load rows at all 01/05/24")
	assert.False(t, ok)
}

func TestFirstPickupDate(t *testing.T) {
	date, ok := FirstPickupDate("48213 06/15/24 06/17/24")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), date)
}

func TestFirstPickupDateInvalidCalendar(t *testing.T) {
	// textually a load row, but not a real date
	_, ok := FirstPickupDate("48213 02/31/24 03/02/24")
	assert.False(t, ok)
}

func TestFieldExtract(t *testing.T) {
	text := "Balance due: $100.00 Subtotal: 10 20 Tolls Subtotal $5.00 Deductions Subtotal: $7.00"

	gross, ok := FieldGross.Extract(text)
	require.True(t, ok)
	assert.InDelta(t, 100.00, gross, 0.001)

	miles, ok := FieldMiles.Extract(text)
	require.True(t, ok)
	assert.Equal(t, 30.0, miles)

	tolls, ok := FieldTolls.Extract(text)
	require.True(t, ok)
	assert.InDelta(t, 5.00, tolls, 0.001)

	expenses, ok := FieldExpenses.Extract(text)
	require.True(t, ok)
	assert.InDelta(t, 7.00, expenses, 0.001)
}

func TestParseField(t *testing.T) {
	for _, valid := range []string{"gross", "miles", "tolls", "expenses"} {
		field, err := ParseField(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(field))
	}

	_, err := ParseField("fuel")
	assert.Error(t, err)
}

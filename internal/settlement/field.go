package settlement

import "fmt"

// Field identifies which settlement figure is being aggregated.
type Field string

const (
	FieldGross    Field = "gross"
	FieldMiles    Field = "miles"
	FieldTolls    Field = "tolls"
	FieldExpenses Field = "expenses"
)

// ParseField validates a caller-supplied field name.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldGross, FieldMiles, FieldTolls, FieldExpenses:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Extract runs the extractor selected by f over normalized document text.
// Miles are returned as a whole-number count; all other fields are currency
// amounts.
func (f Field) Extract(text string) (float64, bool) {
	switch f {
	case FieldGross:
		return ExtractBalanceDue(text)
	case FieldMiles:
		miles, ok := ExtractMiles(text)
		return float64(miles), ok
	case FieldTolls:
		return ExtractTolls(text)
	case FieldExpenses:
		return ExtractExpenses(text)
	}
	return 0, false
}

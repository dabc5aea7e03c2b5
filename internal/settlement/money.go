package settlement

import (
	"strconv"
	"strings"
)

// ParseAmount converts a captured numeral substring into a signed amount.
// Tolerated shapes: interior whitespace, a value wholly wrapped in
// parentheses (accounting negative), a leading currency symbol, and
// thousands-separator commas.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.Join(strings.Fields(s), "")

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = cleaned[1 : len(cleaned)-1]
		negative = true
	}

	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrMalformedNumber
	}
	if negative {
		amount = -amount
	}
	return amount, nil
}

// signedAmount folds the negation indicators matched by an extraction
// pattern (an explicit sign token and a detected open/close parenthesis
// pair) into the parsed magnitude. Parentheses and a minus sign are
// equivalent; both present still yields a single negation.
func signedAmount(body string, sign string, parenthesized bool) (float64, error) {
	amount, err := ParseAmount(body)
	if err != nil {
		return 0, err
	}
	if (parenthesized || sign == "-") && amount > 0 {
		amount = -amount
	}
	return amount, nil
}

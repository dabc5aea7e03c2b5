package settlement

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Extraction patterns. These are the de-facto schema of carrier settlement
// sheets: the documents carry no machine-readable structure, so label
// proximity on whitespace-normalized text is the only stable signal across
// layout revisions.
//
// amountTail captures a currency amount with its negation indicators at the
// pattern level: optional surrounding parentheses, an optional minus sign
// before or after the currency symbol. Groups, in order: open paren, sign
// before $, sign after $, numeral body, close paren.
const amountTail = `(\()?\s*(-?)\s*\$?\s*(-?)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)\s*(\))?`

var (
	balanceDuePattern = regexp.MustCompile(`(?i)\bbalance\s+due\b\s*:\s*` + amountTail)
	milesPattern      = regexp.MustCompile(`(?i)\bsubtotal\s*:\s*([0-9]{1,4})\s+([0-9]{1,4})(?:[^.0-9]|$)`)
	tollsPattern      = regexp.MustCompile(`(?i)\btolls\b.*?\bsubtotal\b\s*:?\s*` + amountTail)
	expensesPattern   = regexp.MustCompile(`(?i)\bdeductions\b.*?\bsubtotal\s*:\s*` + amountTail)
	loadRowPattern    = regexp.MustCompile(`\b([0-9]{4,6})\s+([0-9]{2}/[0-9]{2}/[0-9]{2})\s+([0-9]{2}/[0-9]{2}/[0-9]{2})\b`)
)

// ExtractBalanceDue returns the amount following the first "Balance due:"
// label. Negative balances appear either parenthesized or with an explicit
// minus sign; both are honored.
func ExtractBalanceDue(text string) (float64, bool) {
	return matchAmount(balanceDuePattern, text)
}

// ExtractTolls returns the subtotal of the tolls table: the label "Tolls",
// then the nearest subsequent "Subtotal", then a signed currency amount.
func ExtractTolls(text string) (float64, bool) {
	return matchAmount(tollsPattern, text)
}

// ExtractExpenses returns the subtotal of the truck-expense deductions
// table, anchored on the "Deductions" label.
func ExtractExpenses(text string) (float64, bool) {
	return matchAmount(expensesPattern, text)
}

func matchAmount(pattern *regexp.Regexp, text string) (float64, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	parenthesized := m[1] == "(" && m[5] == ")"
	sign := m[2]
	if sign == "" {
		sign = m[3]
	}
	amount, err := signedAmount(m[4], sign, parenthesized)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// ExtractMiles returns total miles driven: the empty and loaded figures on
// the first "Subtotal:" line, summed. Documents with multiple unrelated
// subtotal lines rely on the mileage table appearing first.
func ExtractMiles(text string) (int, bool) {
	m := milesPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	empty, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	loaded, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return empty + loaded, true
}

// ExtractPickupRange collects the pickup date of every load row
// (load id, pickup date, delivery date) in document order and returns a
// display string pairing the first and last. A single row yields identical
// ends.
func ExtractPickupRange(text string) (string, bool) {
	pickups := pickupDates(text)
	if len(pickups) == 0 {
		return "", false
	}
	return fmt.Sprintf("%s - %s", pickups[0], pickups[len(pickups)-1]), true
}

// FirstPickupDate returns the first load row's pickup date as a calendar
// date, for use by the date-range filter. A textual match that is not a
// valid calendar date counts as absent.
func FirstPickupDate(text string) (time.Time, bool) {
	pickups := pickupDates(text)
	if len(pickups) == 0 {
		return time.Time{}, false
	}
	return ParseDate(pickups[0])
}

func pickupDates(text string) []string {
	var pickups []string
	for _, m := range loadRowPattern.FindAllStringSubmatch(text, -1) {
		pickups = append(pickups, m[2])
	}
	return pickups
}

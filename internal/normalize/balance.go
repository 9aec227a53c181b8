package normalize

import (
	"monetrix-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// ExtractBalance returns the account balance as a finite decimal. The value
// is read from balance, then amount. Numbers are used as is, text is parsed,
// and a nested object is searched one level deep for amount or value.
// Every other shape yields zero.
func ExtractBalance(record models.RawRecord) decimal.Decimal {
	raw, ok := record.Get("balance")
	if !ok {
		raw, ok = record.Get("amount")
	}
	if !ok {
		return decimal.Zero
	}
	if d, ok := scalarBalance(raw); ok {
		return d
	}
	if nested, ok := asObject(raw); ok {
		inner, ok := nested.Get("amount")
		if !ok {
			inner, ok = nested.Get("value")
		}
		if !ok {
			return decimal.Zero
		}
		if d, ok := scalarBalance(inner); ok {
			return d
		}
	}
	return decimal.Zero
}

// scalarBalance handles the numeric and text branches. Text that does not
// parse still counts as handled and yields zero.
func scalarBalance(v interface{}) (decimal.Decimal, bool) {
	if d, ok := asNumber(v); ok {
		return d, true
	}
	if s, ok := v.(string); ok {
		d, _ := parseDecimalText(s)
		return d, true
	}
	return decimal.Zero, false
}

package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"monetrix-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultAccountLabel = "Счёт"
	UnknownBankCode     = "unknown"
)

// Numeric input is kept within float64 range, and fractions finer than
// maxFractionDigits are rounded off, so sums over parsed values stay cheap.
const (
	maxIntegerDigits  = 309
	maxFractionDigits = 32
)

// fieldRule is one step of a fallback chain: a key and the coercion that
// decides whether the value stored there is usable.
type fieldRule struct {
	key    string
	coerce func(interface{}) (string, bool)
}

func textRules(keys ...string) []fieldRule {
	rules := make([]fieldRule, len(keys))
	for i, key := range keys {
		rules[i] = fieldRule{key: key, coerce: asText}
	}
	return rules
}

var (
	accountNameChain = textRules("name", "accountType", "type", "productType")
	accountIDChain   = textRules("id", "accountId", "number")
	bankCodeChain    = textRules("bank")
	bankLabelChain   = textRules("bankLabel", "bankName")
)

// resolve walks the chain and returns the first usable value.
func resolve(record models.RawRecord, chain []fieldRule) (string, bool) {
	for _, rule := range chain {
		v, ok := record.Get(rule.key)
		if !ok {
			continue
		}
		if s, ok := rule.coerce(v); ok {
			return s, true
		}
	}
	return "", false
}

// ResolveAccountName returns the account's product label.
func ResolveAccountName(record models.RawRecord) string {
	if name, ok := resolve(record, accountNameChain); ok {
		return name
	}
	return DefaultAccountLabel
}

// ResolveAccountID returns the account identifier, falling back to the
// record's position in its input sequence. Positional ids are not stable
// across refetches when the upstream omits real identifiers.
func ResolveAccountID(record models.RawRecord, fallbackIndex int) string {
	if id, ok := resolve(record, accountIDChain); ok {
		return id
	}
	return strconv.Itoa(fallbackIndex)
}

// ResolveBankCode returns the grouping key for the account's bank.
func ResolveBankCode(record models.RawRecord) string {
	if code, ok := resolve(record, bankCodeChain); ok {
		return code
	}
	return UnknownBankCode
}

// ResolveBankLabel returns the bank display name.
func ResolveBankLabel(record models.RawRecord) string {
	return resolveBankLabel(record, ResolveBankCode(record))
}

func resolveBankLabel(record models.RawRecord, code string) string {
	if label, ok := resolve(record, bankLabelChain); ok {
		return label
	}
	return strings.ToUpper(code)
}

// asText accepts non-empty strings and finite numbers.
func asText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), t.String() != ""
	}
	if d, ok := asNumber(v); ok {
		return d.String(), true
	}
	return "", false
}

// asNumber accepts Go numeric kinds, json.Number and decimal.Decimal.
// NaN and infinities are not numbers here.
func asNumber(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return bounded(t)
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero, false
		}
		return bounded(*t)
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, false
		}
		return bounded(d)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int8:
		return decimal.NewFromInt(int64(t)), true
	case int16:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case uint:
		return fromUint64(uint64(t)), true
	case uint8:
		return decimal.NewFromInt(int64(t)), true
	case uint16:
		return decimal.NewFromInt(int64(t)), true
	case uint32:
		return decimal.NewFromInt(int64(t)), true
	case uint64:
		return fromUint64(t), true
	}
	return decimal.Zero, false
}

func fromUint64(u uint64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatUint(u, 10))
}

// parseDecimalText parses a human-entered amount. Grouping spaces are
// dropped and a lone comma is read as the decimal separator.
func parseDecimalText(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '\u2009':
			return -1
		}
		return r
	}, s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return bounded(d)
}

// bounded rejects values a float64 cannot hold and treats magnitudes below
// 1e-32 as zero. It looks at the digit count and exponent before doing any
// arithmetic, since a huge exponent makes rescaling arbitrarily expensive.
func bounded(d decimal.Decimal) (decimal.Decimal, bool) {
	if d.Sign() == 0 {
		return decimal.Zero, true
	}
	magnitude := d.NumDigits() + int(d.Exponent())
	if magnitude > maxIntegerDigits {
		return decimal.Zero, false
	}
	if magnitude < -maxFractionDigits {
		return decimal.Zero, true
	}
	if d.Exponent() < -maxFractionDigits {
		d = d.Round(maxFractionDigits)
	}
	if f, _ := d.Float64(); math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return d, true
}

// asObject accepts a nested record in either of its map spellings.
func asObject(v interface{}) (models.RawRecord, bool) {
	switch t := v.(type) {
	case models.RawRecord:
		return t, true
	case map[string]interface{}:
		return models.RawRecord(t), true
	}
	return nil, false
}

// ResolveText returns the first usable text value among keys.
func ResolveText(record models.RawRecord, keys ...string) (string, bool) {
	return resolve(record, textRules(keys...))
}

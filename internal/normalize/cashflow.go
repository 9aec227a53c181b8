package normalize

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"monetrix-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Epoch milliseconds outside this range are not representable dates.
const maxEpochMillis = 8.64e15

var maxUnits = decimal.NewFromInt(math.MaxInt64)

var localDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// CashflowStats describes one bucketing pass.
type CashflowStats struct {
	Considered      int
	Undated         int
	ZeroOrMalformed int
	Buckets         int
}

type monthKey struct {
	year  int
	month time.Month
}

// String renders the bucket key with a zero-based month.
func (k monthKey) String() string {
	return strconv.Itoa(k.year) + "-" + strconv.Itoa(int(k.month)-1)
}

func (k monthKey) before(other monthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

type bucket struct {
	income  decimal.Decimal
	outcome decimal.Decimal
}

// ResolveTransactionDate reads date, then transactionDate, in UTC.
func ResolveTransactionDate(record models.RawRecord) (time.Time, bool) {
	return defaultNormalizer.ResolveTransactionDate(record)
}

// ResolveTransactionDate reads date, then transactionDate, in the
// normalizer's location.
func (n *Normalizer) ResolveTransactionDate(record models.RawRecord) (time.Time, bool) {
	for _, key := range []string{"date", "transactionDate"} {
		v, ok := record.Get(key)
		if !ok {
			continue
		}
		if t, ok := n.parseDate(v); ok {
			return t, true
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

func (n *Normalizer) parseDate(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.In(n.location), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return t.In(n.location), true
	case string:
		return n.parseDateText(t)
	}
	ms, ok := asNumber(v)
	if !ok {
		return time.Time{}, false
	}
	f, _ := ms.Float64()
	if math.Abs(f) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(ms.IntPart()).In(n.location), true
}

func (n *Normalizer) parseDateText(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(n.location), true
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, s, n.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolveTransactionAmount reads amount, then transactionAmount. The
// boolean is false when the value is not a finite number; a missing
// amount resolves to zero.
func ResolveTransactionAmount(record models.RawRecord) (decimal.Decimal, bool) {
	v, ok := record.Get("amount")
	if !ok {
		v, ok = record.Get("transactionAmount")
	}
	if !ok {
		return decimal.Zero, true
	}
	if d, ok := asNumber(v); ok {
		return d, true
	}
	if s, ok := v.(string); ok {
		return parseDecimalText(s)
	}
	return decimal.Zero, false
}

// BucketCashflow sums income and outcome per calendar month and returns
// the most recent months in ascending order.
func (n *Normalizer) BucketCashflow(transactions []models.RawRecord) []models.MonthlyFlowPoint {
	points, _ := n.BucketCashflowWithStats(transactions)
	return points
}

// BucketCashflowWithStats is BucketCashflow plus counters for the pass.
func (n *Normalizer) BucketCashflowWithStats(transactions []models.RawRecord) ([]models.MonthlyFlowPoint, CashflowStats) {
	stats := CashflowStats{Considered: len(transactions)}
	buckets := make(map[monthKey]*bucket)

	for _, tx := range transactions {
		date, ok := n.ResolveTransactionDate(tx)
		if !ok {
			stats.Undated++
			continue
		}
		key := monthKey{year: date.Year(), month: date.Month()}
		b, exists := buckets[key]
		if !exists {
			b = &bucket{income: decimal.Zero, outcome: decimal.Zero}
			buckets[key] = b
		}

		amount, ok := ResolveTransactionAmount(tx)
		if !ok || amount.IsZero() {
			stats.ZeroOrMalformed++
			continue
		}
		if amount.IsPositive() {
			b.income = b.income.Add(amount)
		} else {
			b.outcome = b.outcome.Add(amount.Abs())
		}
	}
	stats.Buckets = len(buckets)

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })
	if len(keys) > n.monthCap {
		keys = keys[len(keys)-n.monthCap:]
	}

	points := make([]models.MonthlyFlowPoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		points = append(points, models.MonthlyFlowPoint{
			Key:     k.String(),
			Month:   n.MonthLabel(k.month),
			Income:  wholeUnits(b.income),
			Outcome: wholeUnits(b.outcome),
		})
	}
	return points, stats
}

// wholeUnits rounds a non-negative bucket sum, saturating at MaxInt64.
func wholeUnits(sum decimal.Decimal) int64 {
	r := sum.Round(0)
	if r.GreaterThan(maxUnits) {
		return math.MaxInt64
	}
	return r.IntPart()
}

// Package normalize turns loosely-typed bank feed records into the stable
// shapes the dashboard renders: per-bank account groups with running totals
// and a month-bucketed cashflow series.
//
// Every function in this package is total. Missing keys, unexpected value
// shapes and unparsable text resolve to documented defaults; nothing here
// returns an error or panics on malformed input. Inputs are never mutated
// and each call allocates fresh output, so a Normalizer is safe for
// concurrent use.
package normalize

import (
	"time"

	"monetrix-dashboard/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultMonthCap = 3

// Locale selects currency grouping and month labels.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// Normalizer holds presentation settings shared by the aggregators.
type Normalizer struct {
	locale   Locale
	location *time.Location
	monthCap int
	printer  *message.Printer
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLocale sets the locale for currency text and month labels.
// Unknown locales fall back to LocaleRU.
func WithLocale(locale Locale) Option {
	return func(n *Normalizer) {
		n.locale = locale
	}
}

// WithLocation sets the calendar used to place transactions into months.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		if loc != nil {
			n.location = loc
		}
	}
}

// WithMonthCap limits how many recent months BucketCashflow emits.
func WithMonthCap(months int) Option {
	return func(n *Normalizer) {
		if months > 0 {
			n.monthCap = months
		}
	}
}

// New creates a Normalizer. Defaults: ru locale, UTC, three months.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		locale:   LocaleRU,
		location: time.UTC,
		monthCap: DefaultMonthCap,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.locale != LocaleEN {
		n.locale = LocaleRU
	}
	n.printer = message.NewPrinter(languageTag(n.locale))
	return n
}

func languageTag(locale Locale) language.Tag {
	if locale == LocaleEN {
		return language.English
	}
	return language.Russian
}

// Locale returns the configured locale.
func (n *Normalizer) Locale() Locale {
	return n.locale
}

// Location returns the configured calendar location.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

var defaultNormalizer = New()

// AggregateBanks groups accounts with the default settings.
func AggregateBanks(records []models.RawRecord) []models.AggregatedBank {
	return defaultNormalizer.AggregateBanks(records)
}

// BucketCashflow buckets transactions with the default settings.
func BucketCashflow(transactions []models.RawRecord) []models.MonthlyFlowPoint {
	return defaultNormalizer.BucketCashflow(transactions)
}

package normalize

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/number"
)

const currencySuffix = " ₽"

var monthLabels = map[Locale][12]string{
	LocaleRU: {"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"},
	LocaleEN: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// FormatCurrency renders a ruble amount with locale grouping and at most
// two fraction digits.
func (n *Normalizer) FormatCurrency(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return n.printer.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2))) + currencySuffix
}

// MonthLabel returns the short month name for the normalizer's locale.
func (n *Normalizer) MonthLabel(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthLabels[n.locale][month-1]
}

// FormatCurrency renders an amount with the default normalizer.
func FormatCurrency(amount decimal.Decimal) string {
	return defaultNormalizer.FormatCurrency(amount)
}

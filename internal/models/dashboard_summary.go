package models

import "github.com/shopspring/decimal"

// DashboardSummary is the headline block of the client dashboard.
type DashboardSummary struct {
	ClientID       string             `json:"clientId"`
	NetWorth       decimal.Decimal    `json:"netWorth"`
	Assets         decimal.Decimal    `json:"assets"`
	Liabilities    decimal.Decimal    `json:"liabilities"`
	Cashflow       CashflowOutlook    `json:"cashflow"`
	Budgets        []Budget           `json:"budgets"`
	Consents       RawRecords         `json:"consents,omitempty"`
	Banks          []AggregatedBank   `json:"banks"`
	CashflowSeries []MonthlyFlowPoint `json:"cashflowSeries"`
	GeneratedAt    string             `json:"generatedAt"`
}

type CashflowOutlook struct {
	Next30Days decimal.Decimal `json:"next30days"`
	Trend      decimal.Decimal `json:"trend"`
}

type Budget struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Actual     decimal.Decimal `json:"actual"`
	Percentage *float64        `json:"percentage,omitempty"`
}

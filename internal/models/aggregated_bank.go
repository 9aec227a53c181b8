package models

import "github.com/shopspring/decimal"

// AggregatedBank groups the accounts held at one bank.
// TotalBalance is always the sum of BalanceValue over Accounts.
type AggregatedBank struct {
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	TotalBalance decimal.Decimal     `json:"totalBalance"`
	TotalText    string              `json:"totalText"`
	Accounts     []AggregatedAccount `json:"accounts"`
}

// AggregatedAccount is one normalized account line inside a bank group.
type AggregatedAccount struct {
	ID           string          `json:"id"`
	Bank         string          `json:"bank"`
	Type         string          `json:"type"`
	BalanceValue decimal.Decimal `json:"balanceValue"`
	BalanceText  string          `json:"balanceText"`
}

package models

import "time"

// TransactionFilter narrows a raw transaction listing.
// From and To are inclusive calendar days.
type TransactionFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type Pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// TransactionPage is one page of raw transactions in feed order.
type TransactionPage struct {
	Items      RawRecords `json:"items"`
	Pagination Pagination `json:"pagination"`
}

package dto

import "monetrix-dashboard/internal/models"

// ClientQuery selects the client whose latest feed snapshot is rendered
type ClientQuery struct {
	ClientID string `query:"clientId" validate:"required,client_id"`
}

// TransactionQuery contains filtering and paging options for the raw
// transaction listing. From and To are inclusive calendar dates.
type TransactionQuery struct {
	ClientID  string `query:"clientId" validate:"required,client_id"`
	AccountID string `query:"accountId" validate:"omitempty,max=128"`
	From      string `query:"from" validate:"omitempty,iso_date"`
	To        string `query:"to" validate:"omitempty,iso_date"`
	Limit     int    `query:"limit" validate:"gte=0"`
	Offset    int    `query:"offset" validate:"gte=0"`
}

// BanksResponse is the body of GET /api/dashboard/banks
type BanksResponse struct {
	Banks []models.AggregatedBank `json:"banks"`
}

// CashflowResponse is the body of GET /api/dashboard/cashflow
type CashflowResponse struct {
	Series []models.MonthlyFlowPoint `json:"series"`
}

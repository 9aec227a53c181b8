package dto

import (
	"time"

	"monetrix-dashboard/internal/models"
)

// ImportFeedRequest is one client's merged bank feed pushed by an upstream
// fetcher. Records are stored as received.
type ImportFeedRequest struct {
	ClientID     string            `param:"clientId" json:"-" validate:"required,client_id"`
	Accounts     models.RawRecords `json:"accounts"`
	Transactions models.RawRecords `json:"transactions"`
	Consents     models.RawRecords `json:"consents"`
}

// ImportFeedResponse describes the stored snapshot
type ImportFeedResponse struct {
	SnapshotID   string    `json:"snapshotId"`
	ClientID     string    `json:"clientId"`
	Accounts     int       `json:"accounts"`
	Transactions int       `json:"transactions"`
	FetchedAt    time.Time `json:"fetchedAt"`
}

// ClientsResponse lists the clients with at least one stored snapshot
type ClientsResponse struct {
	Clients []string `json:"clients"`
}

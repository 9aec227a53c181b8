package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrClientIDRequired = errors.New("client ID is required")

// FeedSnapshot is one complete fetch of a client's accounts and transactions
// across all connected banks.
type FeedSnapshot struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ClientID     string     `gorm:"type:varchar(100);not null;index" json:"client_id"`
	Accounts     RawRecords `gorm:"type:text;not null" json:"accounts"`
	Transactions RawRecords `gorm:"type:text;not null" json:"transactions"`
	Consents     RawRecords `gorm:"type:text" json:"consents"`
	FetchedAt    time.Time  `gorm:"not null;index" json:"fetched_at"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for FeedSnapshot
func (s *FeedSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.FetchedAt.IsZero() {
		s.FetchedAt = now
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.Accounts == nil {
		s.Accounts = RawRecords{}
	}
	if s.Transactions == nil {
		s.Transactions = RawRecords{}
	}

	return s.Validate()
}

// Validate validates the snapshot fields
func (s *FeedSnapshot) Validate() error {
	if strings.TrimSpace(s.ClientID) == "" {
		return ErrClientIDRequired
	}
	return nil
}

func (s *FeedSnapshot) TableName() string {
	return "feed_snapshots"
}

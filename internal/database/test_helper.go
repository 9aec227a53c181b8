package database

import (
	"testing"
	"time"

	"monetrix-dashboard/internal/config"
	"monetrix-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the schema applied.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// :memory: is per connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestSnapshot stores a snapshot for clientID fetched at fetchedAt.
func CreateTestSnapshot(t *testing.T, db *DB, clientID string, fetchedAt time.Time, accounts, transactions models.RawRecords) *models.FeedSnapshot {
	t.Helper()

	snapshot := &models.FeedSnapshot{
		ClientID:     clientID,
		Accounts:     accounts,
		Transactions: transactions,
		FetchedAt:    fetchedAt,
	}

	if err := db.Create(snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}

	return snapshot
}

// CleanupTestDB removes all rows written by a test.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM feed_snapshots").Error; err != nil {
		t.Logf("failed to cleanup table feed_snapshots: %v", err)
	}
}

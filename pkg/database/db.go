package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"-"`
	KeyPreview string     `json:"key_preview"`
	Name       string     `gorm:"not null" json:"name"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalStaff   int    `gorm:"default:0" json:"total_staff"`
	TotalGroups  int    `gorm:"default:0" json:"total_groups"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// StaffSlot represents one filled slot of the roster in the staff_slots table
type StaffSlot struct {
	ID                 uint   `gorm:"primaryKey"`
	GroupID            string `gorm:"uniqueIndex:idx_group_slot;not null"`
	Slot               int    `gorm:"uniqueIndex:idx_group_slot;not null"`
	StaffID            string `gorm:"unique;not null"`
	Name               string `gorm:"not null"`
	LifeguardCertified bool
	SeniorCounselor    bool
	UpdatedAt          time.Time
}

// RosterState holds roster-wide settings in a single row
type RosterState struct {
	ID      uint `gorm:"primaryKey"`
	OnBreak string
}

// InitDB opens Postgres when dsn is set and a SQLite file at dataPath otherwise,
// then migrates the schema.
func InitDB(dsn, dataPath string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if dsn != "" {
		cfg.PrepareStmt = false
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	} else {
		if dataPath == "" {
			dataPath = "camp.db"
		}
		db, err = gorm.Open(sqlite.Open(dataPath), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}, &StaffSlot{}, &RosterState{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

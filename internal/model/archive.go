package model

import (
	"time"
)

// ScanArchiveEntry is the durable copy of a scan event, written by the MQ
// consumer. Unlike scan_events it is never trimmed, so it preserves history
// beyond the per-link sliding window and feeds data export.
type ScanArchiveEntry struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Identifier string    `json:"identifier" gorm:"type:varchar(8);index;not null"`
	LinkID     int64     `json:"link_id" gorm:"index"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(64)"`
	UserAgent  string    `json:"user_agent" gorm:"type:varchar(500)"`
	Referrer   string    `json:"referrer" gorm:"type:varchar(500)"`
	Country    string    `json:"country" gorm:"type:varchar(64)"`
	City       string    `json:"city" gorm:"type:varchar(64)"`
	ScannedAt  time.Time `json:"scanned_at" gorm:"index;autoCreateTime"`
}

// TableName returns the table name for ScanArchiveEntry
func (ScanArchiveEntry) TableName() string {
	return "scan_archive"
}

// ScanMessage represents the scan event published to RocketMQ
type ScanMessage struct {
	Identifier string    `json:"identifier"`
	LinkID     int64     `json:"link_id"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	ScannedAt  time.Time `json:"scanned_at"`
}

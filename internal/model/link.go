package model

import (
	"time"
)

const (
	// ScanHistoryLimit is the sliding window of retained scan events per link
	ScanHistoryLimit = 1000

	// MaxTitleLength bounds the link title
	MaxTitleLength = 100
	// MaxDescriptionLength bounds the link description
	MaxDescriptionLength = 500
	// MaxMetadataLength bounds stored user agent and referrer strings
	MaxMetadataLength = 500
)

// Link represents the mapping from a short identifier to a destination URL,
// plus its QR customization and analytics state
type Link struct {
	ID             int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Identifier     string  `json:"identifier" gorm:"type:varchar(8);uniqueIndex;not null"`
	DestinationURL string  `json:"destination_url" gorm:"type:varchar(2048);not null"`
	OwnerID        *string `json:"owner_id,omitempty" gorm:"type:varchar(36);index"`
	Title          string  `json:"title" gorm:"type:varchar(100)"`
	Description    string  `json:"description" gorm:"type:varchar(500)"`

	Customization Customization `json:"customization" gorm:"embedded;embeddedPrefix:qr_"`

	IsActive  bool `json:"is_active" gorm:"default:true"`
	IsPremium bool `json:"is_premium" gorm:"default:false"`

	TotalScans    int64       `json:"total_scans" gorm:"default:0"`
	LastScannedAt *time.Time  `json:"last_scanned_at,omitempty"`
	ScanHistory   []ScanEvent `json:"scan_history,omitempty" gorm:"foreignKey:LinkID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// ScanEvent represents one resolution of an identifier
type ScanEvent struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID    int64     `json:"link_id" gorm:"index;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	UserAgent string    `json:"user_agent,omitempty" gorm:"type:varchar(500)"`
	IPAddress string    `json:"ip_address,omitempty" gorm:"type:varchar(64)"`
	Referrer  string    `json:"referrer,omitempty" gorm:"type:varchar(500)"`
	Country   string    `json:"country,omitempty" gorm:"type:varchar(64)"`
	City      string    `json:"city,omitempty" gorm:"type:varchar(64)"`
}

// TableName returns the table name for ScanEvent
func (ScanEvent) TableName() string {
	return "scan_events"
}

// ScanMeta carries the request metadata of one resolution
type ScanMeta struct {
	UserAgent string
	IPAddress string
	Referrer  string
	Country   string
	City      string
	Timestamp time.Time
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	DestinationURL  string `json:"destination_url" binding:"required"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Size            int    `json:"size"`
	ErrorCorrection string `json:"error_correction"`
	ForegroundColor string `json:"foreground_color"`
	BackgroundColor string `json:"background_color"`
}

// CreateLinkResponse represents the response of link creation
type CreateLinkResponse struct {
	Identifier     string    `json:"identifier"`
	DestinationURL string    `json:"destination_url"`
	ShortURL       string    `json:"short_url"`
	QRImage        string    `json:"qr_image"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateLinkRequest represents a partial link update
type UpdateLinkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// LinkSummary is the list/detail projection of a link
type LinkSummary struct {
	ID             int64      `json:"id"`
	Identifier     string     `json:"identifier"`
	DestinationURL string     `json:"destination_url"`
	ShortURL       string     `json:"short_url"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	IsActive       bool       `json:"is_active"`
	TotalScans     int64      `json:"total_scans"`
	LastScannedAt  *time.Time `json:"last_scanned_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Pagination describes a page of results
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// LinkListResponse is a paginated list of owned links
type LinkListResponse struct {
	Links      []LinkSummary `json:"links"`
	Pagination Pagination    `json:"pagination"`
}

// TruncateMetadata bounds free-text request metadata before storage
func TruncateMetadata(s string) string {
	if len(s) > MaxMetadataLength {
		return s[:MaxMetadataLength]
	}
	return s
}

package model

import (
	"time"
)

// DeviceClass is the coarse device bucket derived from a user agent
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "Mobile"
	DeviceTablet  DeviceClass = "Tablet"
	DeviceBot     DeviceClass = "Bot"
	DeviceDesktop DeviceClass = "Desktop"
)

// DailyCount is one calendar-day bucket of a time series
type DailyCount struct {
	Date  string `json:"date"` // UTC calendar date, YYYY-MM-DD
	Count int64  `json:"count"`
}

// DeviceStat is one device-class slice of the breakdown
type DeviceStat struct {
	Device     DeviceClass `json:"device"`
	Count      int64       `json:"count"`
	Percentage int         `json:"percentage"`
}

// CountryStat is one country slice of the geographic breakdown
type CountryStat struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// LinkAnalytics is the per-link analytics aggregate
type LinkAnalytics struct {
	Identifier    string        `json:"identifier"`
	TotalScans    int64         `json:"total_scans"`
	LastScannedAt *time.Time    `json:"last_scanned_at,omitempty"`
	DailySeries   []DailyCount  `json:"daily_series"`
	Devices       []DeviceStat  `json:"devices"`
	Countries     []CountryStat `json:"countries"`
	RecentScans   []ScanEvent   `json:"recent_scans"`
}

// TopLink is one entry of the dashboard top-performing ranking
type TopLink struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	TotalScans int64  `json:"total_scans"`
}

// ActivityEvent is one entry of the dashboard recent-activity feed
type ActivityEvent struct {
	Identifier string    `json:"identifier"`
	Timestamp  time.Time `json:"timestamp"`
	UserAgent  string    `json:"user_agent,omitempty"`
	Country    string    `json:"country,omitempty"`
}

// Dashboard is the all-owned-links analytics aggregate
type Dashboard struct {
	TotalLinks     int64           `json:"total_links"`
	ActiveLinks    int64           `json:"active_links"`
	TotalScans     int64           `json:"total_scans"`
	DailySeries    []DailyCount    `json:"daily_series"`
	Devices        []DeviceStat    `json:"devices"`
	Countries      []CountryStat   `json:"countries"`
	TopPerforming  []TopLink       `json:"top_performing"`
	RecentActivity []ActivityEvent `json:"recent_activity"`
}

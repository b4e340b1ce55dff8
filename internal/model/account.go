package model

import (
	"errors"
	"strings"
	"time"
)

// Plan is the closed set of subscription tiers
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Unlimited marks a quota with no cap
const Unlimited = -1

// ErrUnknownPlan is returned when a plan name cannot be parsed
var ErrUnknownPlan = errors.New("unknown plan")

// ParsePlan parses a plan name; "business" is accepted as an alias of enterprise
func ParsePlan(s string) (Plan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free":
		return PlanFree, nil
	case "pro":
		return PlanPro, nil
	case "enterprise", "business":
		return PlanEnterprise, nil
	default:
		return "", ErrUnknownPlan
	}
}

// Limits are the plan-derived quotas and feature gates. They are always
// recomputed from the plan, never edited directly.
type Limits struct {
	MaxLinks          int  `json:"max_links" gorm:"default:5"`
	MaxScansPerMonth  int  `json:"max_scans_per_month" gorm:"default:100"`
	CanCustomize      bool `json:"can_customize" gorm:"default:false"`
	CanTrackAnalytics bool `json:"can_track_analytics" gorm:"default:false"`
	CanExportData     bool `json:"can_export_data" gorm:"default:false"`
}

// LimitsFor returns the limits for a plan. The mapping is exhaustive over
// the closed Plan set; unknown values fall back to the free tier.
func LimitsFor(p Plan) Limits {
	switch p {
	case PlanPro:
		return Limits{
			MaxLinks:          100,
			MaxScansPerMonth:  10000,
			CanCustomize:      true,
			CanTrackAnalytics: true,
			CanExportData:     true,
		}
	case PlanEnterprise:
		return Limits{
			MaxLinks:          Unlimited,
			MaxScansPerMonth:  Unlimited,
			CanCustomize:      true,
			CanTrackAnalytics: true,
			CanExportData:     true,
		}
	case PlanFree:
		fallthrough
	default:
		return Limits{
			MaxLinks:          5,
			MaxScansPerMonth:  100,
			CanCustomize:      false,
			CanTrackAnalytics: false,
			CanExportData:     false,
		}
	}
}

// Account represents a registered owner of links
type Account struct {
	ID           string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email        string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"`
	DisplayName  string `json:"display_name" gorm:"type:varchar(100)"`

	Plan   Plan   `json:"plan" gorm:"type:varchar(16);default:'free'"`
	Limits Limits `json:"limits" gorm:"embedded;embeddedPrefix:limit_"`

	LinksCreated  int64     `json:"links_created" gorm:"default:0"`
	MonthlyScans  int64     `json:"monthly_scans" gorm:"default:0"`
	LastResetDate time.Time `json:"last_reset_date"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// ApplyPlan sets the plan and overwrites the limits from the mapping
func (a *Account) ApplyPlan(p Plan) {
	a.Plan = p
	a.Limits = LimitsFor(p)
}

// RegisterRequest represents an account registration
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token and profile
type AuthResponse struct {
	Token   string          `json:"token"`
	Account *AccountProfile `json:"account"`
}

// AccountProfile is the externally visible account projection
type AccountProfile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name"`
	Plan          Plan      `json:"plan"`
	Limits        Limits    `json:"limits"`
	LinksCreated  int64     `json:"links_created"`
	MonthlyScans  int64     `json:"monthly_scans"`
	LastResetDate time.Time `json:"last_reset_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// Profile builds the external projection of an account
func (a *Account) Profile() *AccountProfile {
	return &AccountProfile{
		ID:            a.ID,
		Email:         a.Email,
		DisplayName:   a.DisplayName,
		Plan:          a.Plan,
		Limits:        a.Limits,
		LinksCreated:  a.LinksCreated,
		MonthlyScans:  a.MonthlyScans,
		LastResetDate: a.LastResetDate,
		CreatedAt:     a.CreatedAt,
	}
}

// PlanChangeRequest is the billing webhook payload
type PlanChangeRequest struct {
	Email string `json:"email" binding:"required"`
	Plan  string `json:"plan" binding:"required"`
}

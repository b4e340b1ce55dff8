package service

import (
	"context"
	"time"

	"qrlink/internal/model"
	"qrlink/internal/repository"
)

// LinkRepositoryInterface defines the link store operations used by services (for testing)
type LinkRepositoryInterface interface {
	CreateLink(ctx context.Context, link *model.Link, maxLinks int) error
	GetLinkByIdentifier(ctx context.Context, identifier string) (*model.Link, error)
	GetActiveLinkByIdentifier(ctx context.Context, identifier string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id int64) (*model.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]model.Link, int64, error)
	ListLinksWithHistory(ctx context.Context, ownerID string) ([]model.Link, error)
	CountLinksByOwner(ctx context.Context, ownerID string) (int64, error)
	UpdateLink(ctx context.Context, link *model.Link) error
	DeleteLink(ctx context.Context, link *model.Link) error
	RecordScan(ctx context.Context, linkID int64, event *model.ScanEvent) error
	ScanHistory(ctx context.Context, linkID int64) ([]model.ScanEvent, error)
	SaveArchiveEntry(ctx context.Context, entry *model.ScanArchiveEntry) error
	ArchiveByIdentifier(ctx context.Context, identifier string) ([]model.ScanArchiveEntry, error)
}

// AccountRepositoryInterface defines the account store operations used by services (for testing)
type AccountRepositoryInterface interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
	UpdateAccountPlan(ctx context.Context, id string, plan model.Plan, limits model.Limits) error
	IncrementMonthlyScans(ctx context.Context, id string) error
	ResetMonthlyUsage(ctx context.Context, id string, resetAt time.Time) error
}

// CacheRepositoryInterface defines the resolution cache operations used by services (for testing)
type CacheRepositoryInterface interface {
	SaveResolution(ctx context.Context, identifier string, res *repository.CachedResolution, ttl time.Duration) error
	GetResolution(ctx context.Context, identifier string) (*repository.CachedResolution, error)
	InvalidateResolution(ctx context.Context, identifier string) error
}

// BloomServiceInterface defines the identifier Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, identifier string) error
	Exists(ctx context.Context, identifier string) (bool, error)
}

// QuotaServiceInterface defines the creation quota gate
type QuotaServiceInterface interface {
	CheckQuota(ctx context.Context, owner *model.Account) error
}

// LinkServiceInterface defines the link lifecycle operations
type LinkServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLinkRequest, owner *model.Account) (*model.CreateLinkResponse, error)
	Resolve(ctx context.Context, identifier string, meta *model.ScanMeta) (string, error)
	RenderQR(ctx context.Context, identifier string) ([]byte, error)
	List(ctx context.Context, ownerID string, page, pageSize int) (*model.LinkListResponse, error)
	Get(ctx context.Context, linkID int64, ownerID string) (*model.Link, error)
	Update(ctx context.Context, linkID int64, ownerID string, req *model.UpdateLinkRequest) (*model.LinkSummary, error)
	Delete(ctx context.Context, linkID int64, ownerID string) error
}

// ScanServiceInterface defines scan recording
type ScanServiceInterface interface {
	RecordScan(ctx context.Context, res *repository.CachedResolution, meta *model.ScanMeta) error
}

// AnalyticsServiceInterface defines analytics aggregation
type AnalyticsServiceInterface interface {
	LinkAnalytics(ctx context.Context, linkID int64, ownerID string) (*model.LinkAnalytics, error)
	Dashboard(ctx context.Context, ownerID string) (*model.Dashboard, error)
	Export(ctx context.Context, linkID int64, ownerID string) ([]model.ScanArchiveEntry, error)
}

// AccountServiceInterface defines account lifecycle operations
type AccountServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetProfile(ctx context.Context, accountID string) (*model.AccountProfile, error)
	GetAccount(ctx context.Context, accountID string) (*model.Account, error)
	ChangePlan(ctx context.Context, email string, plan model.Plan) (*model.AccountProfile, error)
}

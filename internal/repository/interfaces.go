package repository

import (
	"context"
	"time"

	"qrlink/internal/model"
)

// LinkRepositoryInterface defines link persistence operations
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

// AccountRepositoryInterface defines account persistence operations
type AccountRepositoryInterface interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
	UpdateAccountPlan(ctx context.Context, id string, plan model.Plan, limits model.Limits) error
	IncrementMonthlyScans(ctx context.Context, id string) error
	ResetMonthlyUsage(ctx context.Context, id string, resetAt time.Time) error
}

// CacheRepositoryInterface defines the redis-backed resolution cache
type CacheRepositoryInterface interface {
	SaveResolution(ctx context.Context, identifier string, res *CachedResolution, ttl time.Duration) error
	GetResolution(ctx context.Context, identifier string) (*CachedResolution, error)
	InvalidateResolution(ctx context.Context, identifier string) error
}

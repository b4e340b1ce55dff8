package repository

import (
	"context"
	"errors"
	"time"

	"qrlink/internal/config"
	"qrlink/internal/model"

	sqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateIdentifier is returned when an identifier insert hits the unique index
	ErrDuplicateIdentifier = errors.New("identifier already exists")
	// ErrDuplicateEmail is returned when an account email is already registered
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrQuotaExceeded is returned when the owner's link quota is reached
	ErrQuotaExceeded = errors.New("link quota exceeded")
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(
		&model.Link{},
		&model.ScanEvent{},
		&model.Account{},
		&model.ScanArchiveEntry{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateLink inserts a new link. For owned links the insert runs in a
// transaction that locks the owner account row first, so the quota check
// and the insert cannot interleave with a concurrent creation by the same
// owner. maxLinks < 0 means unlimited.
func (r *MySQLRepository) CreateLink(ctx context.Context, link *model.Link, maxLinks int) error {
	if link.OwnerID == nil {
		return translateLinkError(r.db.WithContext(ctx).Create(link).Error)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, "id = ?", *link.OwnerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if maxLinks >= 0 {
			var count int64
			if err := tx.Model(&model.Link{}).
				Where("owner_id = ?", *link.OwnerID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(maxLinks) {
				return ErrQuotaExceeded
			}
		}

		if err := tx.Create(link).Error; err != nil {
			return translateLinkError(err)
		}

		return tx.Model(&model.Account{}).
			Where("id = ?", *link.OwnerID).
			UpdateColumn("links_created", gorm.Expr("links_created + 1")).Error
	})
}

// GetLinkByIdentifier retrieves a link by identifier regardless of state
func (r *MySQLRepository) GetLinkByIdentifier(ctx context.Context, identifier string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// GetActiveLinkByIdentifier retrieves an active link by identifier
func (r *MySQLRepository) GetActiveLinkByIdentifier(ctx context.Context, identifier string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("identifier = ? AND is_active = ?", identifier, true).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// GetLinkByID retrieves a link by primary key
func (r *MySQLRepository) GetLinkByID(ctx context.Context, id int64) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).First(&link, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// ListLinksByOwner returns one page of an owner's links, newest first
func (r *MySQLRepository) ListLinksByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]model.Link, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// ListLinksWithHistory returns all of an owner's links with their retained
// scan history preloaded, for dashboard aggregation
func (r *MySQLRepository) ListLinksWithHistory(ctx context.Context, ownerID string) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Preload("ScanHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("scan_events.id ASC")
		}).
		Where("owner_id = ?", ownerID).
		Find(&links).Error
	return links, err
}

// CountLinksByOwner returns the number of links currently owned
func (r *MySQLRepository) CountLinksByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// UpdateLink persists link mutations. Only title, description and
// is_active are written; scan counters belong to RecordScan and a stale
// loaded value must never overwrite them.
func (r *MySQLRepository) UpdateLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", link.ID).
		Updates(map[string]interface{}{
			"title":       link.Title,
			"description": link.Description,
			"is_active":   link.IsActive,
		}).Error
}

// DeleteLink hard-deletes a link and its retained scan events, and
// decrements the owner's created-links counter
func (r *MySQLRepository) DeleteLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", link.ID).Delete(&model.ScanEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Link{}, link.ID).Error; err != nil {
			return err
		}
		if link.OwnerID != nil {
			return tx.Model(&model.Account{}).
				Where("id = ? AND links_created > 0", *link.OwnerID).
				UpdateColumn("links_created", gorm.Expr("links_created - 1")).Error
		}
		return nil
	})
}

// RecordScan applies one scan atomically: counter bump via SQL expression,
// event insert, and trim of history beyond the sliding window. Concurrent
// scans of the same link never lose increments.
func (r *MySQLRepository) RecordScan(ctx context.Context, linkID int64, event *model.ScanEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Link{}).
			Where("id = ?", linkID).
			UpdateColumns(map[string]interface{}{
				"total_scans":     gorm.Expr("total_scans + 1"),
				"last_scanned_at": event.Timestamp,
			}).Error; err != nil {
			return err
		}

		event.LinkID = linkID
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		// Trim events older than the newest ScanHistoryLimit entries
		var cutoff []int64
		if err := tx.Model(&model.ScanEvent{}).
			Where("link_id = ?", linkID).
			Order("id DESC").
			Limit(1).
			Offset(model.ScanHistoryLimit-1).
			Pluck("id", &cutoff).Error; err != nil {
			return err
		}
		if len(cutoff) == 1 {
			if err := tx.Where("link_id = ? AND id < ?", linkID, cutoff[0]).
				Delete(&model.ScanEvent{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ScanHistory returns the retained scan events of a link in chronological order
func (r *MySQLRepository) ScanHistory(ctx context.Context, linkID int64) ([]model.ScanEvent, error) {
	var events []model.ScanEvent
	err := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("id ASC").
		Find(&events).Error
	return events, err
}

// SaveArchiveEntry appends one scan to the durable archive
func (r *MySQLRepository) SaveArchiveEntry(ctx context.Context, entry *model.ScanArchiveEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ArchiveByIdentifier returns all archived scans of an identifier, newest first
func (r *MySQLRepository) ArchiveByIdentifier(ctx context.Context, identifier string) ([]model.ScanArchiveEntry, error) {
	var entries []model.ScanArchiveEntry
	err := r.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Order("scanned_at DESC").
		Find(&entries).Error
	return entries, err
}

// CreateAccount inserts a new account
func (r *MySQLRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if isDuplicateKey(err) {
		return ErrDuplicateEmail
	}
	return err
}

// GetAccountByEmail retrieves an account by email
func (r *MySQLRepository) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetAccountByID retrieves an account by primary key
func (r *MySQLRepository) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// UpdateAccountPlan overwrites the plan and its derived limits
func (r *MySQLRepository) UpdateAccountPlan(ctx context.Context, id string, plan model.Plan, limits model.Limits) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"plan":                      plan,
			"limit_max_links":           limits.MaxLinks,
			"limit_max_scans_per_month": limits.MaxScansPerMonth,
			"limit_can_customize":       limits.CanCustomize,
			"limit_can_track_analytics": limits.CanTrackAnalytics,
			"limit_can_export_data":     limits.CanExportData,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementMonthlyScans bumps the monthly usage counter atomically
func (r *MySQLRepository) IncrementMonthlyScans(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		UpdateColumn("monthly_scans", gorm.Expr("monthly_scans + 1")).Error
}

// ResetMonthlyUsage zeroes the monthly counter at the start of a new month
func (r *MySQLRepository) ResetMonthlyUsage(ctx context.Context, id string, resetAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"monthly_scans":   0,
			"last_reset_date": resetAt,
		}).Error
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translateLinkError maps driver duplicate-key failures on the identifier
// unique index to the retryable sentinel
func translateLinkError(err error) error {
	if isDuplicateKey(err) {
		return ErrDuplicateIdentifier
	}
	return err
}

// isDuplicateKey reports whether err is a unique-index violation
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *sqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"qrlink/internal/idgen"
	"qrlink/internal/model"
	"qrlink/internal/qr"
	"qrlink/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidURL is returned when the destination URL is missing or malformed
	ErrInvalidURL = errors.New("invalid destination URL")
	// ErrLinkNotFound is returned when no resolvable link matches. Ownership
	// mismatches on update/delete return the same error so existence is not
	// leaked.
	ErrLinkNotFound = errors.New("link not found")
	// ErrTitleTooLong is returned when the title exceeds its bound
	ErrTitleTooLong = errors.New("title exceeds 100 characters")
	// ErrDescriptionTooLong is returned when the description exceeds its bound
	ErrDescriptionTooLong = errors.New("description exceeds 500 characters")
	// ErrGenerationExhausted is returned when identifier collision retries run out
	ErrGenerationExhausted = errors.New("identifier generation exhausted")
)

// MaxGenerateAttempts bounds the identifier collision retry loop
const MaxGenerateAttempts = 5

// LinkService handles the link lifecycle
type LinkService struct {
	generator *idgen.Generator
	linkRepo  LinkRepositoryInterface
	cacheRepo CacheRepositoryInterface
	bloomSvc  BloomServiceInterface
	quotaSvc  QuotaServiceInterface
	scanSvc   ScanServiceInterface
	encoder   qr.Encoder
	baseURL   string
}

// NewLinkService creates a new Link Service
func NewLinkService(
	linkRepo LinkRepositoryInterface,
	cacheRepo CacheRepositoryInterface,
	bloomSvc BloomServiceInterface,
	quotaSvc QuotaServiceInterface,
	scanSvc ScanServiceInterface,
	encoder qr.Encoder,
	baseURL string,
) *LinkService {
	return &LinkService{
		generator: idgen.NewGenerator(),
		linkRepo:  linkRepo,
		cacheRepo: cacheRepo,
		bloomSvc:  bloomSvc,
		quotaSvc:  quotaSvc,
		scanSvc:   scanSvc,
		encoder:   encoder,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// SanitizeURL normalizes a destination URL: whitespace trimmed, scheme
// defaulted to https when missing. A bare domain like "example.com"
// becomes "https://example.com".
func SanitizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	return s
}

// ValidateURL checks that a sanitized URL parses as absolute http/https
func ValidateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// Create mints a new short link: quota check, validated customization,
// collision-retried identifier, QR render. owner may be nil for anonymous
// links.
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest, owner *model.Account) (*model.CreateLinkResponse, error) {
	destination := SanitizeURL(req.DestinationURL)
	if destination == "" {
		return nil, ErrInvalidURL
	}
	if err := ValidateURL(destination); err != nil {
		return nil, err
	}
	if len(req.Title) > model.MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if len(req.Description) > model.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if err := s.quotaSvc.CheckQuota(ctx, owner); err != nil {
		return nil, err
	}

	// Customization is plan-gated: non-entitled requests fall back to the
	// defaults rather than failing.
	customization := model.DefaultCustomization()
	if owner != nil && owner.Limits.CanCustomize {
		c, err := model.CustomizationFromRequest(req)
		if err != nil {
			return nil, err
		}
		customization = c
	} else if req.IsCustom() {
		log.Debug().Msg("Customization options ignored for non-entitled request")
	}

	link := &model.Link{
		DestinationURL: destination,
		Title:          req.Title,
		Description:    req.Description,
		Customization:  customization,
		IsActive:       true,
	}

	maxLinks := model.Unlimited
	if owner != nil {
		link.OwnerID = &owner.ID
		link.IsPremium = owner.Plan != model.PlanFree
		maxLinks = owner.Limits.MaxLinks
	}

	if err := s.insertWithRetry(ctx, link, maxLinks, owner); err != nil {
		return nil, err
	}

	// Record the identifier as issued; it is never handed out again even
	// after the link is deleted.
	if err := s.bloomSvc.Add(ctx, link.Identifier); err != nil {
		log.Warn().Err(err).Str("identifier", link.Identifier).Msg("Failed to add identifier to Bloom Filter")
	}

	s.cacheResolution(ctx, link)

	png, err := s.encoder.Encode(s.shortURL(link.Identifier), link.Customization)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr image: %w", err)
	}

	return &model.CreateLinkResponse{
		Identifier:     link.Identifier,
		DestinationURL: link.DestinationURL,
		ShortURL:       s.shortURL(link.Identifier),
		QRImage:        "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		CreatedAt:      link.CreatedAt,
	}, nil
}

// insertWithRetry draws identifiers until the insert clears the unique
// index, bounded at MaxGenerateAttempts
func (s *LinkService) insertWithRetry(ctx context.Context, link *model.Link, maxLinks int, owner *model.Account) error {
	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		identifier, err := s.generator.Generate()
		if err != nil {
			return err
		}

		// Fast pre-check against every identifier ever issued
		if issued, err := s.bloomSvc.Exists(ctx, identifier); err == nil && issued {
			continue
		}

		link.Identifier = identifier
		err = s.linkRepo.CreateLink(ctx, link, maxLinks)
		if err == nil {
			return nil
		}
		if errors.Is(err, repository.ErrDuplicateIdentifier) {
			log.Warn().Str("identifier", identifier).Int("attempt", attempt+1).Msg("Identifier collision, retrying")
			continue
		}
		if errors.Is(err, repository.ErrQuotaExceeded) && owner != nil {
			return &QuotaExceededError{Plan: owner.Plan, Limit: owner.Limits.MaxLinks}
		}
		return fmt.Errorf("failed to save link: %w", err)
	}

	return ErrGenerationExhausted
}

// Resolve looks up an active link, records the scan and returns the
// destination URL. Inactive and deleted links resolve as not found.
func (s *LinkService) Resolve(ctx context.Context, identifier string, meta *model.ScanMeta) (string, error) {
	// Cache first
	if res, err := s.cacheRepo.GetResolution(ctx, identifier); err == nil {
		s.recordScan(ctx, res, meta)
		return res.DestinationURL, nil
	}

	link, err := s.linkRepo.GetActiveLinkByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrLinkNotFound
		}
		return "", err
	}

	res := resolutionOf(link)
	if err := s.cacheRepo.SaveResolution(ctx, identifier, res, repository.ResolutionCacheTTL); err != nil {
		log.Warn().Err(err).Str("identifier", identifier).Msg("Failed to cache resolution")
	}

	s.recordScan(ctx, res, meta)
	return link.DestinationURL, nil
}

// recordScan records synchronously so analytics counters are visible as
// soon as the redirect returns. A recording failure is logged but never
// blocks the redirect itself.
func (s *LinkService) recordScan(ctx context.Context, res *repository.CachedResolution, meta *model.ScanMeta) {
	if err := s.scanSvc.RecordScan(ctx, res, meta); err != nil {
		log.Error().Err(err).Str("identifier", res.Identifier).Msg("Failed to record scan")
	}
}

// RenderQR re-renders the QR image of an active link
func (s *LinkService) RenderQR(ctx context.Context, identifier string) ([]byte, error) {
	link, err := s.linkRepo.GetActiveLinkByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	return s.encoder.Encode(s.shortURL(link.Identifier), link.Customization)
}

// List returns one page of an owner's links
func (s *LinkService) List(ctx context.Context, ownerID string, page, pageSize int) (*model.LinkListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	links, total, err := s.linkRepo.ListLinksByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	summaries := make([]model.LinkSummary, 0, len(links))
	for i := range links {
		summaries = append(summaries, s.summaryOf(&links[i]))
	}

	return &model.LinkListResponse{
		Links: summaries,
		Pagination: model.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}, nil
}

// Get returns one owned link with full detail
func (s *LinkService) Get(ctx context.Context, linkID int64, ownerID string) (*model.Link, error) {
	return s.ownedLink(ctx, linkID, ownerID)
}

// Update applies a partial mutation to an owned link
func (s *LinkService) Update(ctx context.Context, linkID int64, ownerID string, req *model.UpdateLinkRequest) (*model.LinkSummary, error) {
	link, err := s.ownedLink(ctx, linkID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if len(*req.Title) > model.MaxTitleLength {
			return nil, ErrTitleTooLong
		}
		link.Title = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) > model.MaxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		link.Description = *req.Description
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := s.linkRepo.UpdateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	// Deactivation must take effect immediately
	s.invalidate(ctx, link.Identifier)

	summary := s.summaryOf(link)
	return &summary, nil
}

// Delete removes an owned link permanently. The identifier stays in the
// Bloom Filter and is never reissued.
func (s *LinkService) Delete(ctx context.Context, linkID int64, ownerID string) error {
	link, err := s.ownedLink(ctx, linkID, ownerID)
	if err != nil {
		return err
	}

	if err := s.linkRepo.DeleteLink(ctx, link); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	s.invalidate(ctx, link.Identifier)
	return nil
}

// ownedLink fetches a link and collapses missing and foreign-owned into
// the same not-found result
func (s *LinkService) ownedLink(ctx context.Context, linkID int64, ownerID string) (*model.Link, error) {
	link, err := s.linkRepo.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	if link.OwnerID == nil || *link.OwnerID != ownerID {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

func (s *LinkService) invalidate(ctx context.Context, identifier string) {
	if err := s.cacheRepo.InvalidateResolution(ctx, identifier); err != nil {
		log.Warn().Err(err).Str("identifier", identifier).Msg("Failed to invalidate cached resolution")
	}
}

func (s *LinkService) cacheResolution(ctx context.Context, link *model.Link) {
	res := resolutionOf(link)
	if err := s.cacheRepo.SaveResolution(ctx, link.Identifier, res, repository.ResolutionCacheTTL); err != nil {
		log.Warn().Err(err).Str("identifier", link.Identifier).Msg("Failed to cache resolution")
	}
}

func (s *LinkService) shortURL(identifier string) string {
	return fmt.Sprintf("%s/r/%s", s.baseURL, identifier)
}

func (s *LinkService) summaryOf(link *model.Link) model.LinkSummary {
	return model.LinkSummary{
		ID:             link.ID,
		Identifier:     link.Identifier,
		DestinationURL: link.DestinationURL,
		ShortURL:       s.shortURL(link.Identifier),
		Title:          link.Title,
		Description:    link.Description,
		IsActive:       link.IsActive,
		TotalScans:     link.TotalScans,
		LastScannedAt:  link.LastScannedAt,
		CreatedAt:      link.CreatedAt,
	}
}

func resolutionOf(link *model.Link) *repository.CachedResolution {
	return &repository.CachedResolution{
		LinkID:         link.ID,
		Identifier:     link.Identifier,
		DestinationURL: link.DestinationURL,
		OwnerID:        link.OwnerID,
	}
}

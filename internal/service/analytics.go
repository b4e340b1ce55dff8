package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"qrlink/internal/model"
	"qrlink/internal/repository"
)

const (
	// DefaultWindowDays is the trailing analytics window
	DefaultWindowDays = 30
	// TopCountries caps the geographic breakdown
	TopCountries = 10
	// TopPerformingLinks caps the dashboard ranking
	TopPerformingLinks = 10
	// RecentActivityFeed caps the dashboard activity feed
	RecentActivityFeed = 20
)

// AnalyticsService aggregates scan histories into time series and
// breakdowns. All aggregation is pure and recomputed per request.
type AnalyticsService struct {
	linkRepo LinkRepositoryInterface
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(linkRepo LinkRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{linkRepo: linkRepo}
}

// DailySeries buckets events into one bucket per UTC calendar day over the
// trailing window. Days with zero scans are present; output is ordered
// ascending by date.
func DailySeries(history []model.ScanEvent, windowDays int, now time.Time) []model.DailyCount {
	if windowDays < 1 {
		windowDays = DefaultWindowDays
	}

	today := now.UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(windowDays - 1))

	counts := make(map[string]int64, windowDays)
	series := make([]model.DailyCount, 0, windowDays)
	for d := 0; d < windowDays; d++ {
		date := start.AddDate(0, 0, d).Format("2006-01-02")
		counts[date] = 0
		series = append(series, model.DailyCount{Date: date})
	}

	for _, e := range history {
		date := e.Timestamp.UTC().Format("2006-01-02")
		if _, ok := counts[date]; ok {
			counts[date]++
		}
	}

	for i := range series {
		series[i].Count = counts[series[i].Date]
	}

	return series
}

// ClassifyDevice buckets a user agent by case-insensitive substring match,
// in priority order: mobile, tablet, bot, desktop
func ClassifyDevice(userAgent string) model.DeviceClass {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return model.DeviceMobile
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return model.DeviceTablet
	case strings.Contains(ua, "bot") || strings.Contains(ua, "crawler"):
		return model.DeviceBot
	default:
		return model.DeviceDesktop
	}
}

// DeviceBreakdown classifies each event with a user agent and returns
// per-class counts and percentages, sorted descending by count. Events
// without a user agent are excluded from the denominator.
func DeviceBreakdown(history []model.ScanEvent) []model.DeviceStat {
	counts := make(map[model.DeviceClass]int64)
	var total int64
	for _, e := range history {
		if e.UserAgent == "" {
			continue
		}
		counts[ClassifyDevice(e.UserAgent)]++
		total++
	}

	stats := make([]model.DeviceStat, 0, len(counts))
	for device, count := range counts {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		stats = append(stats, model.DeviceStat{Device: device, Count: count, Percentage: pct})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Device < stats[j].Device
	})

	return stats
}

// LocationBreakdown returns the top countries by scan count, descending.
// Events without a location are excluded.
func LocationBreakdown(history []model.ScanEvent) []model.CountryStat {
	counts := make(map[string]int64)
	for _, e := range history {
		if e.Country == "" {
			continue
		}
		counts[e.Country]++
	}

	stats := make([]model.CountryStat, 0, len(counts))
	for country, count := range counts {
		stats = append(stats, model.CountryStat{Country: country, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Country < stats[j].Country
	})

	if len(stats) > TopCountries {
		stats = stats[:TopCountries]
	}

	return stats
}

// RecentScans filters the history to events within the trailing window,
// preserving input order
func RecentScans(history []model.ScanEvent, windowDays int, now time.Time) []model.ScanEvent {
	if windowDays < 1 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.UTC().AddDate(0, 0, -windowDays)

	recent := make([]model.ScanEvent, 0, len(history))
	for _, e := range history {
		if e.Timestamp.After(cutoff) {
			recent = append(recent, e)
		}
	}
	return recent
}

// LinkAnalytics aggregates one owned link's retained scan history
func (as *AnalyticsService) LinkAnalytics(ctx context.Context, linkID int64, ownerID string) (*model.LinkAnalytics, error) {
	link, err := as.ownedLink(ctx, linkID, ownerID)
	if err != nil {
		return nil, err
	}

	history, err := as.linkRepo.ScanHistory(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan history: %w", err)
	}

	now := time.Now()
	return &model.LinkAnalytics{
		Identifier:    link.Identifier,
		TotalScans:    link.TotalScans,
		LastScannedAt: link.LastScannedAt,
		DailySeries:   DailySeries(history, DefaultWindowDays, now),
		Devices:       DeviceBreakdown(history),
		Countries:     LocationBreakdown(history),
		RecentScans:   RecentScans(history, DefaultWindowDays, now),
	}, nil
}

// Dashboard aggregates across all of an owner's links: merged histories,
// top-performing ranking and a recent-activity feed
func (as *AnalyticsService) Dashboard(ctx context.Context, ownerID string) (*model.Dashboard, error) {
	links, err := as.linkRepo.ListLinksWithHistory(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owned links: %w", err)
	}

	dash := &model.Dashboard{
		TotalLinks: int64(len(links)),
	}

	identifiers := make(map[int64]string, len(links))
	var merged []model.ScanEvent
	for i := range links {
		link := &links[i]
		identifiers[link.ID] = link.Identifier
		dash.TotalScans += link.TotalScans
		if link.IsActive {
			dash.ActiveLinks++
		}
		merged = append(merged, link.ScanHistory...)
	}

	now := time.Now()
	dash.DailySeries = DailySeries(merged, DefaultWindowDays, now)
	dash.Devices = DeviceBreakdown(merged)
	dash.Countries = LocationBreakdown(merged)
	dash.TopPerforming = topPerforming(links)
	dash.RecentActivity = recentActivity(merged, identifiers, now)

	return dash, nil
}

// Export returns the full archived history of one owned link, newest first
func (as *AnalyticsService) Export(ctx context.Context, linkID int64, ownerID string) ([]model.ScanArchiveEntry, error) {
	link, err := as.ownedLink(ctx, linkID, ownerID)
	if err != nil {
		return nil, err
	}
	return as.linkRepo.ArchiveByIdentifier(ctx, link.Identifier)
}

// topPerforming ranks links by total scans, descending, top 10
func topPerforming(links []model.Link) []model.TopLink {
	ranked := make([]model.TopLink, 0, len(links))
	for i := range links {
		ranked = append(ranked, model.TopLink{
			Identifier: links[i].Identifier,
			Title:      links[i].Title,
			TotalScans: links[i].TotalScans,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScans != ranked[j].TotalScans {
			return ranked[i].TotalScans > ranked[j].TotalScans
		}
		return ranked[i].Identifier < ranked[j].Identifier
	})

	if len(ranked) > TopPerformingLinks {
		ranked = ranked[:TopPerformingLinks]
	}
	return ranked
}

// recentActivity returns the newest in-window events across all links,
// descending by timestamp, top 20
func recentActivity(merged []model.ScanEvent, identifiers map[int64]string, now time.Time) []model.ActivityEvent {
	recent := RecentScans(merged, DefaultWindowDays, now)

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})

	if len(recent) > RecentActivityFeed {
		recent = recent[:RecentActivityFeed]
	}

	feed := make([]model.ActivityEvent, 0, len(recent))
	for _, e := range recent {
		feed = append(feed, model.ActivityEvent{
			Identifier: identifiers[e.LinkID],
			Timestamp:  e.Timestamp,
			UserAgent:  e.UserAgent,
			Country:    e.Country,
		})
	}
	return feed
}

// ownedLink collapses missing and foreign-owned links into not-found
func (as *AnalyticsService) ownedLink(ctx context.Context, linkID int64, ownerID string) (*model.Link, error) {
	link, err := as.linkRepo.GetLinkByID(ctx, linkID)
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

package service

import (
	"context"
	"time"

	"qrlink/internal/model"
	"qrlink/internal/mq"
	"qrlink/internal/repository"

	"github.com/rs/zerolog/log"
)

// ScanService records scan events against links and owner usage
type ScanService struct {
	linkRepo    LinkRepositoryInterface
	accountRepo AccountRepositoryInterface
	producer    mq.ProducerInterface
}

// NewScanService creates a new Scan Service. producer may be nil when the
// MQ pipeline is not configured.
func NewScanService(
	linkRepo LinkRepositoryInterface,
	accountRepo AccountRepositoryInterface,
	producer mq.ProducerInterface,
) *ScanService {
	return &ScanService{
		linkRepo:    linkRepo,
		accountRepo: accountRepo,
		producer:    producer,
	}
}

// RecordScan appends one scan event: counter bump, capped history append
// and last-scanned timestamp happen in a single store transaction. The
// owner's monthly usage counter and the MQ archive publish follow; both
// are best-effort and never fail the redirect.
func (s *ScanService) RecordScan(ctx context.Context, res *repository.CachedResolution, meta *model.ScanMeta) error {
	ts := meta.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	event := &model.ScanEvent{
		LinkID:    res.LinkID,
		Timestamp: ts,
		UserAgent: model.TruncateMetadata(meta.UserAgent),
		IPAddress: meta.IPAddress,
		Referrer:  model.TruncateMetadata(meta.Referrer),
		Country:   meta.Country,
		City:      meta.City,
	}

	if err := s.linkRepo.RecordScan(ctx, res.LinkID, event); err != nil {
		return err
	}

	if res.OwnerID != nil {
		if err := s.accountRepo.IncrementMonthlyScans(ctx, *res.OwnerID); err != nil {
			log.Error().Err(err).Str("owner_id", *res.OwnerID).Msg("Failed to increment monthly scans")
		}
	}

	if s.producer != nil {
		msg := &model.ScanMessage{
			Identifier: res.Identifier,
			LinkID:     res.LinkID,
			IPAddress:  event.IPAddress,
			UserAgent:  event.UserAgent,
			Referrer:   event.Referrer,
			Country:    event.Country,
			City:       event.City,
			ScannedAt:  ts,
		}
		if err := s.producer.SendScan(ctx, msg); err != nil {
			log.Error().Err(err).Str("identifier", res.Identifier).Msg("Failed to publish scan to MQ")
		}
	}

	return nil
}

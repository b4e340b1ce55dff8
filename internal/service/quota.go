package service

import (
	"context"
	"errors"
	"fmt"

	"qrlink/internal/model"
)

// ErrQuotaExceeded is returned when an owner has reached their plan's link limit
var ErrQuotaExceeded = errors.New("link quota exceeded")

// QuotaExceededError carries the plan name and limit for user messaging
type QuotaExceededError struct {
	Plan  model.Plan
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("link quota exceeded: the %s plan allows at most %d links", e.Plan, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}

// QuotaService gates link creation on the owner's plan limit
type QuotaService struct {
	linkRepo LinkRepositoryInterface
}

// NewQuotaService creates a new Quota Service
func NewQuotaService(linkRepo LinkRepositoryInterface) *QuotaService {
	return &QuotaService{linkRepo: linkRepo}
}

// CheckQuota allows or denies a creation attempt. Anonymous requests and
// unlimited plans always pass. This is a fast pre-check; the store-level
// insert re-validates the count under a row lock, so concurrent creations
// by the same owner cannot slip past the limit.
func (q *QuotaService) CheckQuota(ctx context.Context, owner *model.Account) error {
	if owner == nil {
		return nil
	}

	if owner.Limits.MaxLinks == model.Unlimited {
		return nil
	}

	count, err := q.linkRepo.CountLinksByOwner(ctx, owner.ID)
	if err != nil {
		return fmt.Errorf("failed to count owned links: %w", err)
	}

	if count >= int64(owner.Limits.MaxLinks) {
		return &QuotaExceededError{Plan: owner.Plan, Limit: owner.Limits.MaxLinks}
	}

	return nil
}

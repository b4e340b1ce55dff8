package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"qrlink/internal/auth"
	"qrlink/internal/model"
	"qrlink/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidEmail is returned when the email format is invalid
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when the password is too short
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's 72-byte limit
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login credentials do not match
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountNotFound is returned when no account matches
	ErrAccountNotFound = errors.New("account not found")
	// ErrFeatureGated is returned when a plan lacks the requested entitlement
	ErrFeatureGated = errors.New("feature not available on current plan")
)

// bcryptCost balances hashing time against brute-force resistance
const bcryptCost = 12

// AccountService handles registration, login and plan management
type AccountService struct {
	accountRepo AccountRepositoryInterface
	tokens      *auth.Manager
}

// NewAccountService creates a new Account Service
func NewAccountService(accountRepo AccountRepositoryInterface, tokens *auth.Manager) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

// Register creates a new account on the free plan
func (s *AccountService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}
	if len(req.Password) > 72 {
		return nil, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		ID:            uuid.New().String(),
		Email:         req.Email,
		PasswordHash:  string(hash),
		DisplayName:   req.DisplayName,
		LastResetDate: time.Now().UTC(),
	}
	account.ApplyPlan(model.PlanFree)

	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.authResponse(account)
}

// Login verifies credentials and issues a bearer token
func (s *AccountService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	account, err := s.accountRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.maybeResetUsage(ctx, account)

	return s.authResponse(account)
}

// GetProfile returns the account profile with live usage counters
func (s *AccountService) GetProfile(ctx context.Context, accountID string) (*model.AccountProfile, error) {
	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.Profile(), nil
}

// GetAccount returns the full account record for request context
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*model.Account, error) {
	return s.loadAccount(ctx, accountID)
}

// ChangePlan applies a billing-driven plan change and recomputes the
// limits from the exhaustive mapping
func (s *AccountService) ChangePlan(ctx context.Context, email string, plan model.Plan) (*model.AccountProfile, error) {
	account, err := s.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	account.ApplyPlan(plan)
	if err := s.accountRepo.UpdateAccountPlan(ctx, account.ID, account.Plan, account.Limits); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	log.Info().
		Str("account_id", account.ID).
		Str("plan", string(plan)).
		Msg("Plan changed, limits recomputed")

	return account.Profile(), nil
}

// RequireAnalytics gates analytics access on the plan entitlement
func RequireAnalytics(owner *model.Account) error {
	if owner == nil || !owner.Limits.CanTrackAnalytics {
		return ErrFeatureGated
	}
	return nil
}

// RequireExport gates data export on the plan entitlement
func RequireExport(owner *model.Account) error {
	if owner == nil || !owner.Limits.CanExportData {
		return ErrFeatureGated
	}
	return nil
}

func (s *AccountService) loadAccount(ctx context.Context, accountID string) (*model.Account, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	s.maybeResetUsage(ctx, account)
	return account, nil
}

// maybeResetUsage zeroes the monthly counter when the last reset fell in a
// previous calendar month
func (s *AccountService) maybeResetUsage(ctx context.Context, account *model.Account) {
	now := time.Now().UTC()
	last := account.LastResetDate.UTC()
	if last.Year() == now.Year() && last.Month() == now.Month() {
		return
	}

	if err := s.accountRepo.ResetMonthlyUsage(ctx, account.ID, now); err != nil {
		log.Error().Err(err).Str("account_id", account.ID).Msg("Failed to reset monthly usage")
		return
	}
	account.MonthlyScans = 0
	account.LastResetDate = now
}

func (s *AccountService) authResponse(account *model.Account) (*model.AuthResponse, error) {
	token, err := s.tokens.Generate(account.ID)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		Token:   token,
		Account: account.Profile(),
	}, nil
}

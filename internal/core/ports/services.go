package ports

import (
	"context"
	"time"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// CurrencySvc exposes the static currency table and reference-currency
// conversion (the currency normalizer).
type CurrencySvc interface {
	ListCurrencies() []domain.Currency
	GetCurrencyByCode(code string) (*domain.Currency, error)
	ToReference(amount decimal.Decimal, code string) decimal.Decimal
	FromReference(amount decimal.Decimal, code string) decimal.Decimal
}

// EntrySvc manages the lifecycle of work entries for one owner.
type EntrySvc interface {
	CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.WorkEntry, error)
	ListEntries(ctx context.Context, ownerID string, filter domain.ReportFilter) ([]domain.WorkEntry, error)
	UpdateEntry(ctx context.Context, ownerID string, entryID string, req dto.UpdateEntryRequest) (*domain.WorkEntry, error)
	DeleteEntry(ctx context.Context, ownerID string, entryID string) error
}

// ImportSvc runs the file import pipeline for one owner. Parse and row
// failures are collected in the summary, never returned as an error.
type ImportSvc interface {
	Import(ctx context.Context, ownerID string, filename string, content []byte) dto.ImportSummary
}

// ExportSvc serializes a filtered entry set into a downloadable blob.
type ExportSvc interface {
	Export(ctx context.Context, ownerID string, filter domain.ReportFilter, format string) (*dto.ExportFile, error)
}

// StatisticsSvc computes aggregate statistics over the full entry set.
type StatisticsSvc interface {
	Statistics(ctx context.Context, ownerID string) (domain.Statistics, error)
}

// UserSvc manages user accounts.
type UserSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
}

// TokenSvc issues application JWTs.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvc talks to the external Google identity provider.
type GoogleOAuthSvc interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}

// ServiceContainer bundles the service interfaces handed to route registration.
type ServiceContainer struct {
	Currency    CurrencySvc
	Entry       EntrySvc
	Import      ImportSvc
	Export      ExportSvc
	Statistics  StatisticsSvc
	User        UserSvc
	Token       TokenSvc
	GoogleOAuth GoogleOAuthSvc
}

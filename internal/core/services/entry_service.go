package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/ExploitInject/Income-Management-TH/internal/dto"
	"github.com/google/uuid"
)

// EntryService provides business logic for work entries. Every operation is
// scoped to one owner; store failures propagate to the caller, never retried.
type EntryService struct {
	BaseService
	entryRepo ports.EntryRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo ports.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// CreateEntry logs a new work entry for the owner. Category and currency are
// soft references: unknown values are accepted and handled leniently
// downstream.
func (s *EntryService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.WorkEntry, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.WorkEntry{
		ID:            uuid.NewString(),
		Date:          req.Date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentStatus: domain.NormalizePaymentStatus(req.PaymentStatus),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.entryRepo.SaveEntry(ctx, ownerID, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entry.ID))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return &entry, nil
}

// ListEntries returns the owner's entries with the filter applied over the
// in-memory snapshot. The store returns the set ordered by date descending.
func (s *EntryService) ListEntries(ctx context.Context, ownerID string, filter domain.ReportFilter) ([]domain.WorkEntry, error) {
	entries, err := s.entryRepo.ListEntries(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	entries = filter.Apply(entries)
	if entries == nil {
		return []domain.WorkEntry{}, nil
	}
	return entries, nil
}

// UpdateEntry applies a partial update to one entry and refreshes UpdatedAt.
func (s *EntryService) UpdateEntry(ctx context.Context, ownerID string, entryID string, req dto.UpdateEntryRequest) (*domain.WorkEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, ownerID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry for update: %w", err)
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Currency != nil {
		entry.Currency = *req.Currency
	}
	if req.PaymentStatus != nil {
		entry.PaymentStatus = domain.NormalizePaymentStatus(*req.PaymentStatus)
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.entryRepo.UpdateEntry(ctx, ownerID, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes one entry owned by the caller.
func (s *EntryService) DeleteEntry(ctx context.Context, ownerID string, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, ownerID, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

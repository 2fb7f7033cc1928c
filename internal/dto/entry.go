package dto

import (
	"time"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to log a new work entry.
// Amount is deliberately not tagged required: zero is a valid amount, and
// `required` would reject the zero value. The service enforces non-negativity.
type CreateEntryRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"required"`
	PaymentStatus string          `json:"paymentStatus" binding:"omitempty,oneof=paid unpaid"`
}

// UpdateEntryRequest defines a partial update; nil fields are left unchanged.
type UpdateEntryRequest struct {
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description" binding:"omitempty,min=1"`
	Amount        *decimal.Decimal `json:"amount"`
	Currency      *string          `json:"currency"`
	PaymentStatus *string          `json:"paymentStatus" binding:"omitempty,oneof=paid unpaid"`
}

// EntryResponse defines the data returned for a work entry.
type EntryResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	CategoryName  string          `json:"categoryName"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToEntryResponse converts a domain.WorkEntry to an EntryResponse DTO.
// CategoryName resolves through the static table with a fallback for
// dangling category references.
func ToEntryResponse(e *domain.WorkEntry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		Date:          e.Date,
		Category:      e.Category,
		CategoryName:  domain.CategoryName(e.Category),
		Description:   e.Description,
		Amount:        e.Amount,
		Currency:      e.Currency,
		PaymentStatus: string(e.PaymentStatus),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToListEntryResponse converts a slice of entries to response DTOs.
func ToListEntryResponse(entries []domain.WorkEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}

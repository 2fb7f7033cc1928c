package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CandidateRecord is an unvalidated, loosely-typed record produced by parsing
// an import file. ValidateCandidate is the sole conversion point between a
// candidate and a trusted domain.WorkEntry.
type CandidateRecord map[string]any

var dateFormatPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Rejection reasons, stable strings surfaced to the user per record.
const (
	reasonMissingFields = "Missing required fields"
	reasonInvalidDate   = "Invalid date format (use YYYY-MM-DD)"
	reasonInvalidAmount = "Invalid amount"
)

// ValidateCandidate checks a candidate record and produces a normalized work
// entry without identity or timestamps (those are assigned at commit).
//
// Rules:
//   - date, category, description, amount and currency must be present and
//     non-empty; amount counts as present when the key exists, so zero passes.
//   - date must match YYYY-MM-DD literally; calendar validity is not checked.
//   - amount must parse as a decimal >= 0.
//   - a payment status outside {paid, unpaid} is silently coerced to unpaid,
//     and a missing one defaults to unpaid.
func ValidateCandidate(rec CandidateRecord) (domain.WorkEntry, error) {
	date := stringField(rec, "date")
	category := stringField(rec, "category")
	description := stringField(rec, "description")
	currency := stringField(rec, "currency")
	amountRaw, amountPresent := rec["amount"]

	if date == "" || category == "" || description == "" || currency == "" || !amountPresent || amountRaw == nil {
		return domain.WorkEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, reasonMissingFields)
	}

	if !dateFormatPattern.MatchString(date) {
		return domain.WorkEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, reasonInvalidDate)
	}

	amount, err := parseAmount(amountRaw)
	if err != nil || amount.IsNegative() {
		return domain.WorkEntry{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, reasonInvalidAmount)
	}

	return domain.WorkEntry{
		Date:          date,
		Category:      category,
		Description:   description,
		Amount:        amount,
		Currency:      currency,
		PaymentStatus: domain.NormalizePaymentStatus(stringField(rec, "paymentStatus")),
	}, nil
}

// stringField reads a field as a string, tolerating absent keys and non-string
// values (which read as empty).
func stringField(rec CandidateRecord, key string) string {
	v, ok := rec[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// parseAmount accepts the value shapes the parsers produce: raw CSV cell
// strings, json.Number from the JSON decoder, and plain numbers.
func parseAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case decimal.Decimal:
		return n, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported amount type %T", v)
	}
}

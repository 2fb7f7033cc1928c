package services

import (
	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyService provides lookups over the static currency table and
// conversion into and out of the reference currency (BDT).
type CurrencyService struct {
	currencies []domain.Currency
	byCode     map[string]domain.Currency
}

// NewCurrencyService builds a service over the fixed currency table.
func NewCurrencyService() *CurrencyService {
	byCode := make(map[string]domain.Currency, len(domain.DefaultCurrencies))
	for _, c := range domain.DefaultCurrencies {
		byCode[c.Code] = c
	}
	return &CurrencyService{
		currencies: domain.DefaultCurrencies,
		byCode:     byCode,
	}
}

// ListCurrencies returns the full currency table.
func (s *CurrencyService) ListCurrencies() []domain.Currency {
	return s.currencies
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *CurrencyService) GetCurrencyByCode(code string) (*domain.Currency, error) {
	c, ok := s.byCode[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

// ToReference converts an amount in the given currency into the reference
// currency. Unknown codes pass the amount through unchanged; aggregation and
// display rely on conversion never failing.
func (s *CurrencyService) ToReference(amount decimal.Decimal, code string) decimal.Decimal {
	c, ok := s.byCode[code]
	if !ok {
		return amount
	}
	return amount.Mul(c.Rate)
}

// FromReference converts a reference-currency amount into the given currency.
// The table guarantees rate > 0, so the division is always defined. Unknown
// codes pass through unchanged, mirroring ToReference.
func (s *CurrencyService) FromReference(amount decimal.Decimal, code string) decimal.Decimal {
	c, ok := s.byCode[code]
	if !ok {
		return amount
	}
	return amount.Div(c.Rate)
}

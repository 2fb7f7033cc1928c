package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/shopspring/decimal"
)

// StatisticsService computes aggregate statistics over the full entry set.
// Every monetary figure is normalized to the reference currency before being
// summed; raw amounts are never added across currencies.
type StatisticsService struct {
	BaseService
	entryRepo   ports.EntryRepository
	currencySvc *CurrencyService
	clock       func() time.Time
}

// StatisticsServiceOption is a functional option for configuring the service.
type StatisticsServiceOption func(*StatisticsService)

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) StatisticsServiceOption {
	return func(s *StatisticsService) {
		s.clock = clock
	}
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(entryRepo ports.EntryRepository, currencySvc *CurrencyService, options ...StatisticsServiceOption) *StatisticsService {
	svc := &StatisticsService{
		entryRepo:   entryRepo,
		currencySvc: currencySvc,
		clock:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Statistics fetches the owner's full (unfiltered) entry set and aggregates it.
func (s *StatisticsService) Statistics(ctx context.Context, ownerID string) (domain.Statistics, error) {
	entries, err := s.entryRepo.ListEntries(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for statistics")
		return domain.Statistics{}, fmt.Errorf("failed to list entries for statistics: %w", err)
	}
	return s.Compute(entries, s.clock()), nil
}

// Compute is a pure function of the entry snapshot and the current moment.
// Today/month/year windows use the calendar position of now in local time;
// the average denominators are now's day-of-month and month number, so these
// figures are only meaningful when now is actually "now".
func (s *StatisticsService) Compute(entries []domain.WorkEntry, now time.Time) domain.Statistics {
	today := now.Format("2006-01-02")
	monthPrefix := now.Format("2006-01")
	yearPrefix := now.Format("2006")

	stats := domain.Statistics{TotalEntries: len(entries)}

	categoryTotals := make(map[string]decimal.Decimal)
	var categoryOrder []string

	for _, e := range entries {
		amount := s.currencySvc.ToReference(e.Amount, e.Currency)

		stats.TotalIncome = stats.TotalIncome.Add(amount)
		if e.Date == today {
			stats.TodayIncome = stats.TodayIncome.Add(amount)
		}
		if strings.HasPrefix(e.Date, monthPrefix) {
			stats.MonthIncome = stats.MonthIncome.Add(amount)
		}
		if strings.HasPrefix(e.Date, yearPrefix) {
			stats.YearIncome = stats.YearIncome.Add(amount)
		}

		if e.PaymentStatus == domain.PaymentStatusPaid {
			stats.PaidIncome = stats.PaidIncome.Add(amount)
			stats.PaidEntries++
		} else {
			stats.UnpaidIncome = stats.UnpaidIncome.Add(amount)
			stats.UnpaidEntries++
		}

		if _, seen := categoryTotals[e.Category]; !seen {
			categoryOrder = append(categoryOrder, e.Category)
		}
		categoryTotals[e.Category] = categoryTotals[e.Category].Add(amount)
	}

	stats.TopCategory = topCategory(categoryOrder, categoryTotals)
	stats.AvgDailyIncome = stats.MonthIncome.Div(decimal.NewFromInt(int64(now.Day())))
	stats.AvgMonthlyIncome = stats.YearIncome.Div(decimal.NewFromInt(int64(now.Month())))
	return stats
}

// topCategory picks the category with the greatest total; ties break in
// first-encountered order. An empty entry set yields the empty string.
func topCategory(order []string, totals map[string]decimal.Decimal) string {
	if len(order) == 0 {
		return ""
	}
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]].GreaterThan(totals[ranked[j]])
	})
	return ranked[0]
}

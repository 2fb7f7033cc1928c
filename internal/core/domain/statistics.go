package domain

import "github.com/shopspring/decimal"

// Statistics holds aggregate totals derived from the full entry set. All
// monetary figures are in the reference currency. It is recomputed on demand
// and never persisted.
//
// AvgDailyIncome and AvgMonthlyIncome divide by the current day-of-month and
// month-number respectively, not by the span of the data, so they are only
// meaningful when computed for "now".
type Statistics struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TodayIncome      decimal.Decimal `json:"todayIncome"`
	MonthIncome      decimal.Decimal `json:"monthIncome"`
	YearIncome       decimal.Decimal `json:"yearIncome"`
	AvgDailyIncome   decimal.Decimal `json:"avgDailyIncome"`
	AvgMonthlyIncome decimal.Decimal `json:"avgMonthlyIncome"`
	TopCategory      string          `json:"topCategory"`
	TotalEntries     int             `json:"totalEntries"`
	PaidIncome       decimal.Decimal `json:"paidIncome"`
	UnpaidIncome     decimal.Decimal `json:"unpaidIncome"`
	PaidEntries      int             `json:"paidEntries"`
	UnpaidEntries    int             `json:"unpaidEntries"`
}

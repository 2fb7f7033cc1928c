package domain_test

import (
	"testing"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []domain.WorkEntry {
	return []domain.WorkEntry{
		{ID: "1", Date: "2024-01-10", Category: "freelance", Currency: "USD", PaymentStatus: domain.PaymentStatusPaid},
		{ID: "2", Date: "2024-01-15", Category: "consulting", Currency: "BDT", PaymentStatus: domain.PaymentStatusUnpaid},
		{ID: "3", Date: "2024-02-01", Category: "freelance", Currency: "BDT", PaymentStatus: domain.PaymentStatusPaid},
	}
}

func ids(entries []domain.WorkEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestReportFilter_ZeroMatchesEverything(t *testing.T) {
	f := domain.ReportFilter{}

	assert.True(t, f.IsZero())
	assert.Equal(t, []string{"1", "2", "3"}, ids(f.Apply(testEntries())))
}

func TestReportFilter_DateBoundsInclusive(t *testing.T) {
	f := domain.ReportFilter{StartDate: "2024-01-15", EndDate: "2024-02-01"}

	assert.Equal(t, []string{"2", "3"}, ids(f.Apply(testEntries())))
}

func TestReportFilter_StartDateExcludesEarlier(t *testing.T) {
	f := domain.ReportFilter{StartDate: "2024-01-16"}

	got := f.Apply(testEntries())
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestReportFilter_FieldsCombineConjunctively(t *testing.T) {
	f := domain.ReportFilter{Category: "freelance", Currency: "BDT"}

	assert.Equal(t, []string{"3"}, ids(f.Apply(testEntries())))
}

func TestReportFilter_PaymentStatus(t *testing.T) {
	f := domain.ReportFilter{PaymentStatus: "unpaid"}

	assert.Equal(t, []string{"2"}, ids(f.Apply(testEntries())))
}

func TestReportFilter_NoMatchesYieldsEmptyNotNil(t *testing.T) {
	f := domain.ReportFilter{Category: "missing"}

	got := f.Apply(testEntries())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

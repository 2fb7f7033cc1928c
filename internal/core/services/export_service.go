package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/ExploitInject/Income-Management-TH/internal/dto"
)

// csvExportHeader is the fixed column set of a CSV export. The last column is
// the reference-currency amount rounded to 2 decimal places.
var csvExportHeader = []string{"Date", "Category", "Description", "Amount", "Currency", "Payment Status", "BDT Amount"}

// ExportService serializes a filtered entry set into CSV or JSON blobs.
type ExportService struct {
	BaseService
	entryRepo   ports.EntryRepository
	currencySvc *CurrencyService
}

// NewExportService creates a new ExportService.
func NewExportService(entryRepo ports.EntryRepository, currencySvc *CurrencyService) *ExportService {
	return &ExportService{entryRepo: entryRepo, currencySvc: currencySvc}
}

// Export fetches the owner's entries, applies the filter over the snapshot,
// and serializes the result. The returned blob is handed to the HTTP layer as
// a download; this service does not touch the filesystem.
func (s *ExportService) Export(ctx context.Context, ownerID string, filter domain.ReportFilter, format string) (*dto.ExportFile, error) {
	if format != "csv" && format != "json" {
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, format)
	}

	entries, err := s.entryRepo.ListEntries(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries for export")
		return nil, fmt.Errorf("failed to list entries for export: %w", err)
	}
	entries = filter.Apply(entries)

	timestamp := time.Now().Format("2006-01-02-1504")
	var file *dto.ExportFile
	if format == "json" {
		content, err := s.marshalJSON(entries)
		if err != nil {
			return nil, err
		}
		file = &dto.ExportFile{
			Filename:    fmt.Sprintf("work-entries-%s.json", timestamp),
			ContentType: "application/json;charset=utf-8",
			Content:     content,
		}
	} else {
		file = &dto.ExportFile{
			Filename:    fmt.Sprintf("work-entries-%s.csv", timestamp),
			ContentType: "text/csv;charset=utf-8",
			Content:     s.marshalCSV(entries),
		}
	}

	s.LogInfo(ctx, "Export generated",
		slog.String("format", format),
		slog.Int("entry_count", len(entries)))
	return file, nil
}

// marshalJSON pretty-prints the entry array with stable field order. The
// indentation is cosmetic; a re-import does not depend on it.
func (s *ExportService) marshalJSON(entries []domain.WorkEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.WorkEntry{}
	}
	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	return content, nil
}

// marshalCSV emits the fixed 7-column layout. Only the description is quoted,
// with internal double quotes doubled; no other field is escaped.
func (s *ExportService) marshalCSV(entries []domain.WorkEntry) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(csvExportHeader, ","))
	for _, e := range entries {
		bdtAmount := s.currencySvc.ToReference(e.Amount, e.Currency)
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			e.Date,
			e.Category,
			`"` + strings.ReplaceAll(e.Description, `"`, `""`) + `"`,
			e.Amount.String(),
			e.Currency,
			string(e.PaymentStatus),
			bdtAmount.StringFixed(2),
		}, ","))
	}
	return []byte(b.String())
}

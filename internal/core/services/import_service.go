package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/ExploitInject/Income-Management-TH/internal/dto"
	"github.com/google/uuid"
)

// Fatal parse errors, each aborting the whole import with zero records attempted.
const (
	errInvalidJSON       = "Invalid JSON format"
	errEmptyCSV          = "CSV file must have at least a header and one data row"
	errUnsupportedFormat = "Unsupported file format. Please use JSON or CSV files."
)

// csvFieldMap is the fixed lookup from recognized (lowercased, trimmed) CSV
// header cells to candidate record fields. Unrecognized columns are ignored.
var csvFieldMap = map[string]string{
	"date":           "date",
	"category":       "category",
	"description":    "description",
	"amount":         "amount",
	"currency":       "currency",
	"payment status": "paymentStatus",
	"paymentstatus":  "paymentStatus",
}

// ImportService parses an uploaded file into candidate records, validates
// each one, and commits the survivors to the entry store one at a time.
type ImportService struct {
	BaseService
	entryRepo ports.EntryRepository
}

// NewImportService creates a new ImportService.
func NewImportService(entryRepo ports.EntryRepository) *ImportService {
	return &ImportService{entryRepo: entryRepo}
}

// Import runs the pipeline over a single file. Row-level failures accumulate
// in the summary and never abort the batch; only parse-fatal conditions
// (malformed JSON, empty CSV, unknown extension) end the run early, with zero
// records attempted. Errors are keyed by the candidate's 1-based position in
// the parsed sequence.
func (s *ImportService) Import(ctx context.Context, ownerID string, filename string, content []byte) dto.ImportSummary {
	summary := dto.ImportSummary{Errors: []string{}}

	candidates, fatal := parseImportFile(filename, content)
	if fatal != "" {
		summary.Errors = append(summary.Errors, fatal)
		return summary
	}

	for i, cand := range candidates {
		entry, err := ValidateCandidate(cand)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Entry %d: %s", i+1, rejectionReason(err)))
			continue
		}

		// Commits are issued sequentially, one outstanding write at a time.
		// A store failure is recorded for this record only; the batch continues.
		now := time.Now().UTC()
		entry.ID = uuid.NewString()
		entry.CreatedAt = now
		entry.UpdatedAt = now
		if err := s.entryRepo.SaveEntry(ctx, ownerID, entry); err != nil {
			s.LogError(ctx, err, "Failed to commit imported entry", slog.Int("entry_index", i+1))
			summary.Errors = append(summary.Errors, fmt.Sprintf("Entry %d: %s", i+1, err.Error()))
			continue
		}
		summary.SuccessCount++
	}

	s.LogInfo(ctx, "Import finished",
		slog.String("file", filename),
		slog.Int("success_count", summary.SuccessCount),
		slog.Int("error_count", len(summary.Errors)))
	return summary
}

// parseImportFile dispatches on the file extension and returns candidate
// records, or a non-empty fatal error message.
func parseImportFile(filename string, content []byte) ([]CandidateRecord, string) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return parseJSONRecords(content)
	case ".csv":
		return parseCSVRecords(content)
	default:
		return nil, errUnsupportedFormat
	}
}

// parseJSONRecords parses the whole file as JSON. A top-level non-array value
// is wrapped as a single-element batch. Numbers are kept as json.Number so
// the validator controls their interpretation.
func parseJSONRecords(content []byte) ([]CandidateRecord, string) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, errInvalidJSON
	}
	// Decode stops after the first top-level value; a file with trailing
	// content is malformed as a whole, not a shorter valid batch.
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, errInvalidJSON
	}

	items, ok := parsed.([]any)
	if !ok {
		items = []any{parsed}
	}

	candidates := make([]CandidateRecord, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			candidates[i] = CandidateRecord(obj)
		} else {
			// Not an object; the validator rejects it as missing fields.
			candidates[i] = CandidateRecord{}
		}
	}
	return candidates, ""
}

// parseCSVRecords splits content into lines, treats the first non-blank line
// as the header, and converts each data row into a candidate record.
//
// The split on "," is deliberately naive: embedded commas inside quoted
// fields are not handled beyond stripping one layer of leading/trailing
// double quotes per cell. Every data row yields a string-valued candidate;
// row-shaped problems surface through the validator, keeping all row errors
// on one numbering scheme.
func parseCSVRecords(content []byte) ([]CandidateRecord, string) {
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	if len(lines) < 2 {
		return nil, errEmptyCSV
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	candidates := make([]CandidateRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		cand := CandidateRecord{}
		for i, header := range headers {
			field, recognized := csvFieldMap[header]
			if !recognized || i >= len(values) {
				continue
			}
			value := stripQuotes(strings.TrimSpace(values[i]))
			if field == "paymentStatus" {
				cand[field] = string(domain.NormalizePaymentStatus(strings.ToLower(value)))
			} else {
				cand[field] = value
			}
		}
		candidates = append(candidates, cand)
	}
	return candidates, ""
}

// stripQuotes removes one leading and one trailing double quote, if present.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// rejectionReason extracts the human-readable part of a validation error,
// dropping the sentinel prefix.
func rejectionReason(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

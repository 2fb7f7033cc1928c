package domain

// ReportFilter is a transient query object applied to an in-memory snapshot
// of entries. Every field is independently optional; an empty field means "no
// constraint". Date bounds are inclusive and compared as strings, which is
// valid because dates are zero-padded YYYY-MM-DD.
type ReportFilter struct {
	StartDate     string
	EndDate       string
	Category      string
	Currency      string
	PaymentStatus string
}

// IsZero reports whether the filter constrains anything.
func (f ReportFilter) IsZero() bool {
	return f == ReportFilter{}
}

// Matches reports whether an entry passes every present filter field.
func (f ReportFilter) Matches(e WorkEntry) bool {
	if f.StartDate != "" && e.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && e.Date > f.EndDate {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Currency != "" && e.Currency != f.Currency {
		return false
	}
	if f.PaymentStatus != "" && string(e.PaymentStatus) != f.PaymentStatus {
		return false
	}
	return true
}

// Apply returns the entries that match the filter, preserving order.
func (f ReportFilter) Apply(entries []WorkEntry) []WorkEntry {
	if f.IsZero() {
		return entries
	}
	filtered := make([]WorkEntry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

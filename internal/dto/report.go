package dto

// ImportSummary is the outcome of one import pipeline run. Errors carries one
// string per failed record; the caller is responsible for presentation.
type ImportSummary struct {
	SuccessCount int      `json:"success"`
	Errors       []string `json:"errors"`
}

// ExportFile is a serialized export blob plus the metadata needed to hand it
// to a download trigger.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportFilterQuery binds the filter query parameters shared by the list,
// export and report endpoints.
type ReportFilterQuery struct {
	StartDate     string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Category      string `form:"category"`
	Currency      string `form:"currency"`
	PaymentStatus string `form:"paymentStatus" binding:"omitempty,oneof=paid unpaid"`
}

package services_test

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  *services.ExportService
	ownerID  string
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewExportService(suite.mockRepo, services.NewCurrencyService())
	suite.ownerID = uuid.NewString()
}

func sampleEntries() []domain.WorkEntry {
	return []domain.WorkEntry{
		{
			ID:            "e1",
			Date:          "2024-01-15",
			Category:      "freelance",
			Description:   "Logo design",
			Amount:        decimal.NewFromInt(500),
			Currency:      "USD",
			PaymentStatus: domain.PaymentStatusPaid,
		},
		{
			ID:            "e2",
			Date:          "2024-01-16",
			Category:      "others",
			Description:   `Said "thanks", paid cash`,
			Amount:        decimal.NewFromFloat(12.5),
			Currency:      "BDT",
			PaymentStatus: domain.PaymentStatusUnpaid,
		},
	}
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExport_CSV() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, suite.ownerID).Return(sampleEntries(), nil).Once()

	file, err := suite.service.Export(ctx, suite.ownerID, domain.ReportFilter{}, "csv")

	suite.Require().NoError(err)
	suite.Equal("text/csv;charset=utf-8", file.ContentType)
	suite.Regexp(regexp.MustCompile(`^work-entries-\d{4}-\d{2}-\d{2}-\d{4}\.csv$`), file.Filename)

	lines := strings.Split(string(file.Content), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("Date,Category,Description,Amount,Currency,Payment Status,BDT Amount", lines[0])
	suite.Equal(`2024-01-15,freelance,"Logo design",500,USD,paid,55000.00`, lines[1])
	suite.Equal(`2024-01-16,others,"Said ""thanks"", paid cash",12.5,BDT,unpaid,12.50`, lines[2])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExport_CSV_EmptySetIsHeaderOnly() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, suite.ownerID).Return([]domain.WorkEntry{}, nil).Once()

	file, err := suite.service.Export(ctx, suite.ownerID, domain.ReportFilter{}, "csv")

	suite.Require().NoError(err)
	suite.Equal("Date,Category,Description,Amount,Currency,Payment Status,BDT Amount", string(file.Content))
}

func (suite *ExportServiceTestSuite) TestExport_JSON() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, suite.ownerID).Return(sampleEntries(), nil).Once()

	file, err := suite.service.Export(ctx, suite.ownerID, domain.ReportFilter{}, "json")

	suite.Require().NoError(err)
	suite.Equal("application/json;charset=utf-8", file.ContentType)
	suite.Regexp(regexp.MustCompile(`^work-entries-\d{4}-\d{2}-\d{2}-\d{4}\.json$`), file.Filename)

	var decoded []domain.WorkEntry
	suite.Require().NoError(json.Unmarshal(file.Content, &decoded))
	suite.Require().Len(decoded, 2)
	suite.Equal("e1", decoded[0].ID)
	suite.True(decoded[0].Amount.Equal(decimal.NewFromInt(500)))
	suite.Equal(domain.PaymentStatusUnpaid, decoded[1].PaymentStatus)
}

func (suite *ExportServiceTestSuite) TestExport_JSON_EmptySetIsEmptyArray() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, suite.ownerID).Return(nil, nil).Once()

	file, err := suite.service.Export(ctx, suite.ownerID, domain.ReportFilter{}, "json")

	suite.Require().NoError(err)
	suite.Equal("[]", string(file.Content))
}

func (suite *ExportServiceTestSuite) TestExport_JSON_RoundTripsThroughImport() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, suite.ownerID).Return(sampleEntries(), nil).Once()

	file, err := suite.service.Export(ctx, suite.ownerID, domain.ReportFilter{}, "json")
	suite.Require().NoError(err)

	importRepo := new(MockEntryRepository)
	importRepo.On("SaveEntry", mock.Anything, suite.ownerID, mock.AnythingOfType("domain.WorkEntry")).Return(nil).Times(2)

	summary := services.NewImportService(importRepo).Import(ctx, suite.ownerID, file.Filename, file.Content)

	suite.Equal(2, summary.SuccessCount)
	suite.Empty(summary.Errors)
	importRepo.AssertExpectations(suite.T())

	// Every field the wire format carries survives the trip.
	for i, want := range sampleEntries() {
		got := importRepo.Calls[i].Arguments.Get(2).(domain.WorkEntry)
		suite.Equal(want.Date, got.Date)
		suite.Equal(want.Category, got.Category)
		suite.Equal(want.Description, got.Description)
		suite.True(want.Amount.Equal(got.Amount), "amount for entry %d", i)
		suite.Equal(want.Currency, got.Currency)
		suite.Equal(want.PaymentStatus, got.PaymentStatus)
	}
}

func (suite *ExportServiceTestSuite) TestExport_FilterApplied() {
	ctx := context.Background()
	suite.mockRepo.On("ListEntries", ctx, suite.ownerID).Return(sampleEntries(), nil).Once()

	file, err := suite.service.Export(ctx, suite.ownerID, domain.ReportFilter{Category: "others"}, "csv")

	suite.Require().NoError(err)
	lines := strings.Split(string(file.Content), "\n")
	suite.Require().Len(lines, 2)
	suite.Contains(lines[1], "2024-01-16,others")
}

func (suite *ExportServiceTestSuite) TestExport_UnsupportedFormat() {
	file, err := suite.service.Export(context.Background(), suite.ownerID, domain.ReportFilter{}, "xml")

	suite.Require().Error(err)
	suite.Nil(file)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries")
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

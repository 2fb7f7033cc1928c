package services_test

import (
	"context"
	"testing"

	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ImportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  *services.ImportService
	ownerID  string
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewImportService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *ImportServiceTestSuite) expectAnySave() *mock.Call {
	return suite.mockRepo.On("SaveEntry", mock.Anything, suite.ownerID, mock.AnythingOfType("domain.WorkEntry"))
}

// --- Test Cases ---

func (suite *ImportServiceTestSuite) TestImport_CSV_Success() {
	content := []byte("date,category,description,amount,currency\n" +
		`2024-01-15,freelance,"Logo design",500,USD`)

	suite.mockRepo.On("SaveEntry", mock.Anything, suite.ownerID, mock.MatchedBy(func(e domain.WorkEntry) bool {
		return e.ID != "" &&
			e.Date == "2024-01-15" &&
			e.Category == "freelance" &&
			e.Description == "Logo design" &&
			e.Amount.Equal(decimal.NewFromInt(500)) &&
			e.Currency == "USD" &&
			e.PaymentStatus == domain.PaymentStatusUnpaid
	})).Return(nil).Once()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	suite.Equal(1, summary.SuccessCount)
	suite.Empty(summary.Errors)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImport_CSV_HeaderAliasesAndStatus() {
	content := []byte("Date,Category,Description,Amount,Currency,Payment Status\n" +
		"2024-01-15,consulting,Audit,1000,BDT,PAID\n" +
		"2024-01-16,consulting,Audit 2,1000,BDT,nonsense")

	suite.expectAnySave().Return(nil).Twice()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	suite.Equal(2, summary.SuccessCount)
	suite.Empty(summary.Errors)

	// "PAID" folds to paid, unknown values coerce to unpaid.
	statuses := make([]domain.PaymentStatus, 0, 2)
	for _, call := range suite.mockRepo.Calls {
		if call.Method == "SaveEntry" {
			statuses = append(statuses, call.Arguments.Get(2).(domain.WorkEntry).PaymentStatus)
		}
	}
	suite.Equal([]domain.PaymentStatus{domain.PaymentStatusPaid, domain.PaymentStatusUnpaid}, statuses)
}

func (suite *ImportServiceTestSuite) TestImport_CSV_RowErrorsDoNotAbortBatch() {
	content := []byte("date,category,description,amount,currency\n" +
		"2024-01-15,freelance,Logo,500,USD\n" +
		"not-a-date,freelance,Banner,100,USD\n" +
		"2024-01-17,freelance,Card,-5,USD\n" +
		"2024-01-18,freelance,Flyer,200,USD")

	suite.expectAnySave().Return(nil).Twice()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	suite.Equal(2, summary.SuccessCount)
	suite.Equal([]string{
		"Entry 2: Invalid date format (use YYYY-MM-DD)",
		"Entry 3: Invalid amount",
	}, summary.Errors)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImport_CSV_MissingColumns() {
	content := []byte("date,category\n" +
		"2024-01-15,freelance")

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	suite.Equal(0, summary.SuccessCount)
	suite.Equal([]string{"Entry 1: Missing required fields"}, summary.Errors)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *ImportServiceTestSuite) TestImport_CSV_HeaderOnly() {
	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv",
		[]byte("date,category,description,amount,currency\n"))

	suite.Equal(0, summary.SuccessCount)
	suite.Equal([]string{"CSV file must have at least a header and one data row"}, summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImport_CSV_BlankLinesIgnored() {
	content := []byte("\ndate,category,description,amount,currency\r\n\n" +
		"2024-01-15,freelance,Logo,500,USD\r\n\n")

	suite.expectAnySave().Return(nil).Once()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	suite.Equal(1, summary.SuccessCount)
	suite.Empty(summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImport_JSON_Success() {
	content := []byte(`[
		{"date":"2024-01-15","category":"freelance","description":"Logo design","amount":500,"currency":"USD","paymentStatus":"paid"},
		{"date":"2024-01-16","category":"others","description":"Tips","amount":"12.50","currency":"BDT"}
	]`)

	suite.expectAnySave().Return(nil).Twice()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.json", content)

	suite.Equal(2, summary.SuccessCount)
	suite.Empty(summary.Errors)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImport_JSON_SingleObjectWrapped() {
	content := []byte(`{"date":"2024-01-15","category":"freelance","description":"Logo","amount":500,"currency":"USD"}`)

	suite.expectAnySave().Return(nil).Once()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.json", content)

	suite.Equal(1, summary.SuccessCount)
	suite.Empty(summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImport_JSON_NonObjectElements() {
	content := []byte(`[42, "hello"]`)

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.json", content)

	suite.Equal(0, summary.SuccessCount)
	suite.Equal([]string{
		"Entry 1: Missing required fields",
		"Entry 2: Missing required fields",
	}, summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImport_JSON_Malformed() {
	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.json", []byte(`{"date":`))

	suite.Equal(0, summary.SuccessCount)
	suite.Equal([]string{"Invalid JSON format"}, summary.Errors)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *ImportServiceTestSuite) TestImport_JSON_TrailingContentIsMalformed() {
	// A valid prefix does not make the file valid; the batch must abort whole.
	contents := [][]byte{
		[]byte(`[{"date":"2024-01-15","category":"freelance","description":"Logo","amount":500,"currency":"USD"}] THIS IS NOT JSON`),
		[]byte(`[] []`),
		[]byte(`{"date":"2024-01-15"} }`),
	}
	for _, content := range contents {
		summary := suite.service.Import(context.Background(), suite.ownerID, "entries.json", content)

		suite.Equal(0, summary.SuccessCount, "content %q", content)
		suite.Equal([]string{"Invalid JSON format"}, summary.Errors, "content %q", content)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *ImportServiceTestSuite) TestImport_CSV_SameFileTwiceYieldsTwoFullBatches() {
	content := []byte("date,category,description,amount,currency\n" +
		"2024-01-15,freelance,Logo,500,USD\n" +
		"2024-01-16,consulting,Audit,1000,BDT")

	suite.expectAnySave().Return(nil).Times(4)

	first := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)
	second := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	// The pipeline holds no state between runs and never dedupes rows.
	suite.Equal(2, first.SuccessCount)
	suite.Empty(first.Errors)
	suite.Equal(2, second.SuccessCount)
	suite.Empty(second.Errors)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveEntry", 4)

	ids := make(map[string]bool)
	for _, call := range suite.mockRepo.Calls {
		if call.Method == "SaveEntry" {
			ids[call.Arguments.Get(2).(domain.WorkEntry).ID] = true
		}
	}
	suite.Len(ids, 4, "each committed row gets a fresh identity")
}

func (suite *ImportServiceTestSuite) TestImport_JSON_EmptyArray() {
	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.json", []byte(`[]`))

	suite.Equal(0, summary.SuccessCount)
	suite.Empty(summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImport_UnsupportedExtension() {
	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.xlsx", []byte("whatever"))

	suite.Equal(0, summary.SuccessCount)
	suite.Equal([]string{"Unsupported file format. Please use JSON or CSV files."}, summary.Errors)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *ImportServiceTestSuite) TestImport_StoreFailureRecordedPerRow() {
	content := []byte("date,category,description,amount,currency\n" +
		"2024-01-15,freelance,Logo,500,USD\n" +
		"2024-01-16,freelance,Banner,100,USD")

	suite.expectAnySave().Return(assert.AnError).Once()
	suite.expectAnySave().Return(nil).Once()

	summary := suite.service.Import(context.Background(), suite.ownerID, "entries.csv", content)

	suite.Equal(1, summary.SuccessCount)
	suite.Require().Len(summary.Errors, 1)
	suite.Contains(summary.Errors[0], "Entry 1: ")
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

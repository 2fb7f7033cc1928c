package services_test

import (
	"context"
	"testing"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/services"
	"github.com/ExploitInject/Income-Management-TH/internal/dto"
	"github.com/ExploitInject/Income-Management-TH/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Asif", Email: "Asif@Example.COM", Password: "s3cret-pass"}

	suite.mockRepo.On("FindUserByEmail", ctx, "asif@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID != "" &&
			u.Email == "asif@example.com" &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("asif@example.com", user.Email)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Asif", Email: "asif@example.com", Password: "s3cret-pass"}
	existing := &domain.User{UserID: "u1", Email: "asif@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "asif@example.com").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	existing := &domain.User{UserID: "u1", Email: "asif@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "asif@example.com").Return(existing, nil).Once()

	user, err := suite.service.Authenticate(ctx, "asif@example.com", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	existing := &domain.User{UserID: "u1", Email: "asif@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "asif@example.com").Return(existing, nil).Once()

	user, err := suite.service.Authenticate(ctx, "asif@example.com", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_GoogleOnlyAccountRejectsPassword() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "asif@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByEmail", ctx, "asif@example.com").Return(existing, nil).Once()

	user, err := suite.service.Authenticate(ctx, "asif@example.com", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_Existing() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "asif@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "asif@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "Asif@example.com", "Asif")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstSignIn() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" &&
			u.Name == "New User" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "new@example.com", "New User")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_SaveError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "new@example.com", "New User")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, assert.AnError)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

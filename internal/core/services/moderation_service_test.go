package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ModerationRepository ---

type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) BanUser(ctx context.Context, ban domain.BannedUser) error {
	args := m.Called(ctx, ban)
	return args.Error(0)
}

func (m *MockModerationRepository) UnbanUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockModerationRepository) IsBanned(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockModerationRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---

const testAdminSecret = "super-secret-admin-key"

type ModerationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockModerationRepository
	service  portssvc.ModerationSvcFacade
}

func (suite *ModerationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockModerationRepository)
	suite.service = services.NewModerationService(suite.mockRepo, testAdminSecret)
}

func (suite *ModerationServiceTestSuite) TestBanUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("BanUser", ctx, mock.MatchedBy(func(ban domain.BannedUser) bool {
		return ban.UserID == "user-1" && ban.Reason == "spam" && ban.ID != "" && !ban.BannedTime.IsZero()
	})).Return(nil).Once()

	err := suite.service.BanUser(ctx, testAdminSecret, "user-1", "spam")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ModerationServiceTestSuite) TestBanUser_WrongSecret() {
	err := suite.service.BanUser(context.Background(), "wrong-secret", "user-1", "spam")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "BanUser", mock.Anything, mock.Anything)
}

func (suite *ModerationServiceTestSuite) TestBanUser_EmptySecret() {
	err := suite.service.BanUser(context.Background(), "", "user-1", "spam")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "BanUser", mock.Anything, mock.Anything)
}

func (suite *ModerationServiceTestSuite) TestBanUser_EmptyUserID() {
	err := suite.service.BanUser(context.Background(), testAdminSecret, "", "spam")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "BanUser", mock.Anything, mock.Anything)
}

func (suite *ModerationServiceTestSuite) TestBanUser_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("BanUser", ctx, mock.AnythingOfType("domain.BannedUser")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.BanUser(ctx, testAdminSecret, "ghost", "spam")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ModerationServiceTestSuite) TestUnbanUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("UnbanUser", ctx, "user-1").Return(nil).Once()

	suite.Require().NoError(suite.service.UnbanUser(ctx, testAdminSecret, "user-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ModerationServiceTestSuite) TestUnbanUser_WrongSecret() {
	err := suite.service.UnbanUser(context.Background(), "wrong-secret", "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UnbanUser", mock.Anything, mock.Anything)
}

func (suite *ModerationServiceTestSuite) TestUnbanUser_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("UnbanUser", ctx, "ghost").Return(apperrors.ErrNotFound).Once()

	err := suite.service.UnbanUser(ctx, testAdminSecret, "ghost")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ModerationServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteUser", ctx, "user-1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteUser(ctx, testAdminSecret, "user-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ModerationServiceTestSuite) TestDeleteUser_WrongSecret() {
	err := suite.service.DeleteUser(context.Background(), "wrong-secret", "user-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *ModerationServiceTestSuite) TestDeleteUser_EmptyUserID() {
	err := suite.service.DeleteUser(context.Background(), testAdminSecret, "")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *ModerationServiceTestSuite) TestDeleteUser_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteUser", ctx, "ghost").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, testAdminSecret, "ghost")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestModerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ModerationServiceTestSuite))
}

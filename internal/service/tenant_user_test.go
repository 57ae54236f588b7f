package service_test

import (
	"context"
	"testing"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/mocks"
	"kubera-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TenantUserServiceTestSuite defines the test suite for TenantUserService
type TenantUserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUsers    *mocks.MockTenantUserRepositoryInterface
	mockSessions *mocks.MockSessionRepositoryInterface
	mockAudit    *mocks.MockAuditLogRepositoryInterface
	runner       *fakeRunner
	userSvc      *service.TenantUserService
	ctx          context.Context
}

func (suite *TenantUserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockTenantUserRepositoryInterface(suite.ctrl)
	suite.mockSessions = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.runner = &fakeRunner{}
	audit := service.NewAuditService(suite.runner, suite.mockAudit).WithClock(fixedClock)
	suite.userSvc = service.NewTenantUserService(suite.runner, suite.mockUsers, suite.mockSessions, audit, fakeHasher{}, validator.New()).
		WithClock(fixedClock)
	suite.ctx = context.Background()
}

func (suite *TenantUserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantUserServiceTestSuite) expectAudit(action string) {
	suite.mockAudit.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, row *models.AuditLog) error {
			suite.Equal(action, row.Action)
			suite.Equal(fixedNow, row.Timestamp)
			return nil
		})
}

func (suite *TenantUserServiceTestSuite) TestCreate() {
	bc := callerContext(1, models.RoleAdmin, false)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "bob@acme.test").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUsers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, u *models.TenantUser) error {
			suite.Equal("hashed:supersecret", *u.PasswordHash)
			suite.True(u.IsActive)
			u.ID = 2
			return nil
		})
	suite.expectAudit(service.AuditUserCreate)

	resp, err := suite.userSvc.Create(suite.ctx, bc, &service.CreateUserRequest{
		Email:    " Bob@Acme.test ",
		Password: "supersecret",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(2), resp.ID)
	suite.Equal("bob@acme.test", resp.Email)
	suite.Equal(models.RoleMember, resp.Role)
	suite.Equal([]string{"tenant_acme"}, suite.runner.schemas)
}

func (suite *TenantUserServiceTestSuite) TestCreateDuplicateEmail() {
	bc := callerContext(1, models.RoleAdmin, false)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "bob@acme.test").Return(&models.TenantUser{ID: 2}, nil)

	_, err := suite.userSvc.Create(suite.ctx, bc, &service.CreateUserRequest{Email: "bob@acme.test", Password: "supersecret"})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *TenantUserServiceTestSuite) TestCreateRejectsOwnerRole() {
	bc := callerContext(1, models.RoleAdmin, false)
	_, err := suite.userSvc.Create(suite.ctx, bc, &service.CreateUserRequest{
		Email: "bob@acme.test", Password: "supersecret", Role: models.RoleOwner,
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TenantUserServiceTestSuite) TestCannotChangeOwnRole() {
	bc := callerContext(1, models.RoleAdmin, false)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&models.TenantUser{ID: 1, Role: models.RoleAdmin, IsActive: true}, nil)

	role := models.RoleMember
	_, err := suite.userSvc.Update(suite.ctx, bc, 1, &service.UpdateUserRequest{Role: &role})

	suite.ErrorIs(err, apperrors.ErrCannotChangeOwnRole)
}

func (suite *TenantUserServiceTestSuite) TestDeactivateRevokesSessions() {
	bc := callerContext(1, models.RoleAdmin, false)
	target := &models.TenantUser{ID: 2, Email: "bob@acme.test", Role: models.RoleEditor, IsActive: true}
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(2)).Return(target, nil)
	suite.mockUsers.EXPECT().Update(gomock.Any(), target).Return(nil)
	suite.mockSessions.EXPECT().
		RevokeAllForUser(gomock.Any(), int64(2), "", models.RevocationAccountSuspension, bc.User.Email, fixedNow).
		Return(int64(3), nil)
	suite.expectAudit(service.AuditUserUpdate)

	inactive := false
	resp, err := suite.userSvc.Update(suite.ctx, bc, 2, &service.UpdateUserRequest{IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(resp.IsActive)
}

func (suite *TenantUserServiceTestSuite) TestDeleteGuards() {
	bc := callerContext(1, models.RoleAdmin, false)

	err := suite.userSvc.Delete(suite.ctx, bc, 1)
	suite.ErrorIs(err, apperrors.ErrCannotDeleteSelf)

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&models.TenantUser{ID: 5, Role: models.RoleOwner, IsOwner: true}, nil)
	err = suite.userSvc.Delete(suite.ctx, bc, 5)
	suite.ErrorIs(err, apperrors.ErrCannotDeleteOwner)

	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(6)).Return(nil, gorm.ErrRecordNotFound)
	err = suite.userSvc.Delete(suite.ctx, bc, 6)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *TenantUserServiceTestSuite) TestDelete() {
	bc := callerContext(1, models.RoleAdmin, false)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(2)).
		Return(&models.TenantUser{ID: 2, Email: "bob@acme.test", Role: models.RoleMember}, nil)
	suite.mockSessions.EXPECT().
		RevokeAllForUser(gomock.Any(), int64(2), "", models.RevocationAdminAction, bc.User.Email, fixedNow).
		Return(int64(0), nil)
	suite.mockUsers.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	suite.expectAudit(service.AuditUserDelete)

	suite.NoError(suite.userSvc.Delete(suite.ctx, bc, 2))
}

func (suite *TenantUserServiceTestSuite) TestListNormalizesPagination() {
	bc := callerContext(1, models.RoleAdmin, false)
	suite.mockUsers.EXPECT().List(gomock.Any(), 100, 0).
		Return([]models.TenantUser{{ID: 1, Email: "a@acme.test"}}, int64(1), nil)

	resp, err := suite.userSvc.List(suite.ctx, bc, 0, -4)

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Equal(100, resp.Limit)
	suite.Len(resp.Users, 1)
}

func TestTenantUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantUserServiceTestSuite))
}

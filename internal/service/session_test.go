package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/mocks"
	"kubera-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SessionServiceTestSuite defines the test suite for SessionService
type SessionServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockSessionRepositoryInterface
	runner     *fakeRunner
	sessionSvc *service.SessionService
	ctx        context.Context
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.runner = &fakeRunner{}
	suite.sessionSvc = service.NewSessionService(suite.runner, suite.mockRepo).WithClock(fixedClock)
	suite.ctx = context.Background()
}

func (suite *SessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func activeSession(userID int64, jti string) *models.UserSession {
	return &models.UserSession{
		ID:         uuid.New(),
		UserID:     userID,
		TokenJTI:   jti,
		CreatedAt:  fixedNow.Add(-time.Hour),
		LastUsedAt: fixedNow.Add(-time.Hour),
		ExpiresAt:  fixedNow.Add(time.Hour),
	}
}

func (suite *SessionServiceTestSuite) TestCreate() {
	expires := fixedNow.Add(30 * time.Minute)
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, s *models.UserSession) error {
			suite.Equal(int64(7), s.UserID)
			suite.Equal("jti-1", s.TokenJTI)
			suite.Equal(fixedNow, s.CreatedAt)
			suite.Equal(fixedNow, s.LastUsedAt)
			suite.Nil(s.RevokedAt)
			return nil
		})

	session, err := suite.sessionSvc.Create(suite.ctx, acmeInfo(), service.CreateSessionParams{
		UserID:     7,
		JTI:        "jti-1",
		ExpiresAt:  expires,
		IPAddress:  "10.0.0.1",
		DeviceInfo: &models.DeviceInfo{Platform: "linux", Browser: "firefox"},
	})

	suite.Require().NoError(err)
	suite.True(session.IsActive(fixedNow))
	suite.JSONEq(`{"platform":"linux","browser":"firefox","is_mobile":false}`, string(session.DeviceInfo))
	suite.Equal([]string{"tenant_acme"}, suite.runner.schemas)
}

func (suite *SessionServiceTestSuite) TestCreateWithoutTenantFails() {
	_, err := suite.sessionSvc.Create(suite.ctx, nil, service.CreateSessionParams{UserID: 1, JTI: "x"})
	suite.ErrorIs(err, apperrors.ErrNoTenantContext)
}

func (suite *SessionServiceTestSuite) TestValidateActiveTouchesSession() {
	session := activeSession(7, "jti-1")
	suite.mockRepo.EXPECT().GetByJTI(gomock.Any(), "jti-1").Return(session, nil)
	suite.mockRepo.EXPECT().Touch(gomock.Any(), session.ID, fixedNow).Return(nil)

	got, err := suite.sessionSvc.Validate(suite.ctx, acmeInfo(), "jti-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(fixedNow, got.LastUsedAt)
}

func (suite *SessionServiceTestSuite) TestValidateRejectsInactive() {
	revokedAt := fixedNow.Add(-time.Minute)
	revoked := activeSession(7, "revoked")
	revoked.RevokedAt = &revokedAt
	expired := activeSession(7, "expired")
	expired.ExpiresAt = fixedNow

	suite.mockRepo.EXPECT().GetByJTI(gomock.Any(), "revoked").Return(revoked, nil)
	suite.mockRepo.EXPECT().GetByJTI(gomock.Any(), "expired").Return(expired, nil)
	suite.mockRepo.EXPECT().GetByJTI(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

	for _, jti := range []string{"revoked", "expired", "missing"} {
		got, err := suite.sessionSvc.Validate(suite.ctx, acmeInfo(), jti)
		suite.NoError(err, jti)
		suite.Nil(got, jti)
	}

	got, err := suite.sessionSvc.Validate(suite.ctx, acmeInfo(), "")
	suite.NoError(err)
	suite.Nil(got)
}

func (suite *SessionServiceTestSuite) TestValidateStorageFailure() {
	suite.mockRepo.EXPECT().GetByJTI(gomock.Any(), "jti-1").Return(nil, errors.New("connection reset"))

	_, err := suite.sessionSvc.Validate(suite.ctx, acmeInfo(), "jti-1")

	var storageErr *apperrors.StorageError
	suite.ErrorAs(err, &storageErr)
}

func (suite *SessionServiceTestSuite) TestRevoke() {
	suite.mockRepo.EXPECT().
		Revoke(gomock.Any(), "jti-1", models.RevocationUserLogout, "alice@acme.test", fixedNow).
		Return(true, nil)
	suite.mockRepo.EXPECT().
		Revoke(gomock.Any(), "unknown", models.RevocationUserLogout, "alice@acme.test", fixedNow).
		Return(false, nil)

	ok, err := suite.sessionSvc.Revoke(suite.ctx, acmeInfo(), "jti-1", models.RevocationUserLogout, "alice@acme.test")
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.sessionSvc.Revoke(suite.ctx, acmeInfo(), "unknown", models.RevocationUserLogout, "alice@acme.test")
	suite.NoError(err)
	suite.False(ok)
}

func (suite *SessionServiceTestSuite) TestRevokeRejectsUnknownReason() {
	_, err := suite.sessionSvc.Revoke(suite.ctx, acmeInfo(), "jti-1", models.RevocationReason("bored"), "x")
	suite.True(apperrors.IsValidation(err))
}

func (suite *SessionServiceTestSuite) TestRevokeAllForUserExceptCurrent() {
	suite.mockRepo.EXPECT().
		RevokeAllForUser(gomock.Any(), int64(7), "keep", models.RevocationPasswordChange, "alice@acme.test", fixedNow).
		Return(int64(2), nil)

	n, err := suite.sessionSvc.RevokeAllForUser(suite.ctx, acmeInfo(), 7, models.RevocationPasswordChange, "alice@acme.test", "keep")

	suite.NoError(err)
	suite.Equal(int64(2), n)
}

func (suite *SessionServiceTestSuite) TestRevokeByIDIgnoresOtherUsers() {
	session := activeSession(99, "other")
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	ok, err := suite.sessionSvc.RevokeByID(suite.ctx, acmeInfo(), 7, session.ID, models.RevocationUserLogout, "x")

	suite.NoError(err)
	suite.False(ok)
}

func (suite *SessionServiceTestSuite) TestCleanupExpired() {
	suite.mockRepo.EXPECT().
		DeleteExpiredBefore(gomock.Any(), fixedNow.AddDate(0, 0, -30)).
		Return(int64(4), nil)

	n, err := suite.sessionSvc.CleanupExpired(suite.ctx, acmeInfo(), 30)
	suite.NoError(err)
	suite.Equal(int64(4), n)

	_, err = suite.sessionSvc.CleanupExpired(suite.ctx, acmeInfo(), -1)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SessionServiceTestSuite) TestListSessionsMarksCurrent() {
	bc := callerContext(7, models.RoleMember, false)
	current := activeSession(7, bc.TokenJTI)
	other := activeSession(7, "other")
	suite.mockRepo.EXPECT().
		ListForUser(gomock.Any(), int64(7), true, fixedNow).
		Return([]models.UserSession{*current, *other}, nil)
	suite.mockRepo.EXPECT().CountActive(gomock.Any(), int64(7), fixedNow).Return(int64(2), nil)

	resp, err := suite.sessionSvc.ListSessions(suite.ctx, bc, true)

	suite.Require().NoError(err)
	suite.Equal(2, resp.Total)
	suite.Equal(int64(2), resp.ActiveCount)
	suite.True(resp.Sessions[0].IsCurrent)
	suite.False(resp.Sessions[1].IsCurrent)
	suite.Equal(models.SessionStatusActive, resp.Sessions[1].Status)
}

func (suite *SessionServiceTestSuite) TestGetSessionOfAnotherUserIsNotFound() {
	bc := callerContext(7, models.RoleMember, false)
	session := activeSession(8, "x")
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)

	_, err := suite.sessionSvc.GetSession(suite.ctx, bc, session.ID)

	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *SessionServiceTestSuite) TestRevokeAllSessions() {
	bc := callerContext(7, models.RoleMember, false)
	suite.mockRepo.EXPECT().
		RevokeAllForUser(gomock.Any(), int64(7), bc.TokenJTI, models.RevocationUserLogoutAll, bc.User.Email, fixedNow).
		Return(int64(3), nil)
	suite.mockRepo.EXPECT().
		RevokeAllForUser(gomock.Any(), int64(7), "", models.RevocationUserLogoutAll, bc.User.Email, fixedNow).
		Return(int64(1), nil)

	n, err := suite.sessionSvc.RevokeAllSessions(suite.ctx, bc, true)
	suite.NoError(err)
	suite.Equal(int64(3), n)

	n, err = suite.sessionSvc.RevokeAllSessions(suite.ctx, bc, false)
	suite.NoError(err)
	suite.Equal(int64(1), n)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

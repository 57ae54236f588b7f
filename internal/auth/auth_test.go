package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kubera-backend/internal/config"
	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/mocks"
	"kubera-backend/internal/service"
	"kubera-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	ua "github.com/mileusna/useragent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// testRunner binds nothing and hands fn a nil transaction; repositories are mocked.
// results holds what each callback returned, i.e. whether the gate would
// have committed or rolled back.
type testRunner struct {
	schemas []string
	results []error
}

func (r *testRunner) Run(ctx context.Context, info *tenant.Info, fn func(tx *gorm.DB) error) error {
	if info == nil {
		return apperrors.ErrNoTenantContext
	}
	return r.RunForSchema(ctx, info.SchemaName, fn)
}

func (r *testRunner) RunForSchema(_ context.Context, schema string, fn func(tx *gorm.DB) error) error {
	if err := tenant.ValidateSchemaName(schema); err != nil {
		return err
	}
	r.schemas = append(r.schemas, schema)
	err := fn(nil)
	r.results = append(r.results, err)
	return err
}

// countingHasher records how many hash operations a login performs.
type countingHasher struct {
	*BcryptHasher
	verifies int
	dummies  int
}

func (h *countingHasher) Verify(password, hash string) bool {
	h.verifies++
	return h.BcryptHasher.Verify(password, hash)
}

func (h *countingHasher) DummyVerify(password string) {
	h.dummies++
	h.BcryptHasher.DummyVerify(password)
}

func acmeTenant() *models.Tenant {
	return &models.Tenant{ID: 1, Name: "Acme", Subdomain: "acme", SchemaName: "tenant_acme", Status: models.TenantStatusActive}
}

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTenants  *mocks.MockTenantServiceInterface
	mockUsers    *mocks.MockTenantUserRepositoryInterface
	mockSessions *mocks.MockSessionRepositoryInterface
	mockAudit    *mocks.MockAuditLogRepositoryInterface
	runner       *testRunner
	hasher       *BcryptHasher
	tokens       *TokenService
	authService  *AuthService
	ctx          context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTenants = mocks.NewMockTenantServiceInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockTenantUserRepositoryInterface(suite.ctrl)
	suite.mockSessions = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.runner = &testRunner{}
	suite.hasher = NewBcryptHasher(4)

	clock := func() time.Time { return testNow }
	suite.tokens = MustNewTokenService(testSecret, 30*time.Minute)
	sessions := service.NewSessionService(suite.runner, suite.mockSessions).WithClock(clock)
	audit := service.NewAuditService(suite.runner, suite.mockAudit).WithClock(clock)
	suite.authService = NewAuthService(suite.mockTenants, suite.runner, suite.mockUsers, sessions, audit,
		suite.tokens, suite.hasher, validator.New()).WithClock(clock)
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) activeUser() *models.TenantUser {
	hash, err := suite.hasher.Hash("supersecret")
	suite.Require().NoError(err)
	return &models.TenantUser{ID: 3, Email: "nia@acme.test", PasswordHash: &hash, Role: models.RoleMember, IsActive: true}
}

func (suite *AuthServiceTestSuite) issue(claims *Claims) (string, string) {
	token, _, jti, err := suite.tokens.Issue(claims, 0, "")
	suite.Require().NoError(err)
	return token, jti
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	user := suite.activeUser()
	suite.mockTenants.EXPECT().GetBySubdomain(gomock.Any(), "acme").Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "nia@acme.test").Return(user, nil)

	var stored *models.UserSession
	suite.mockSessions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, s *models.UserSession) error {
			stored = s
			return nil
		})
	suite.mockUsers.EXPECT().UpdateLastLogin(gomock.Any(), int64(3), testNow).Return(nil)
	suite.mockAudit.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, entry *models.AuditLog) error {
			suite.Equal(service.AuditUserLogin, entry.Action)
			return nil
		})

	resp, err := suite.authService.Login(suite.ctx, &LoginRequest{Email: "Nia@Acme.test", Password: "supersecret"}, ClientMeta{
		Host:      "acme.localhost:5173",
		IPAddress: "10.0.0.9",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0 Safari/537.36",
	})

	suite.Require().NoError(err)
	suite.Equal("bearer", resp.TokenType)
	suite.Equal(int64(1800), resp.ExpiresIn)
	suite.Equal("acme", resp.Tenant.Subdomain)

	claims, err := suite.tokens.Verify(resp.AccessToken)
	suite.Require().NoError(err)
	suite.Equal("nia@acme.test", claims.Email())
	suite.Equal("acme", claims.TenantSubdomain)
	suite.Require().NotNil(stored)
	suite.Equal(claims.JTI(), stored.TokenJTI)
	suite.Equal(resp.ExpiresAt, stored.ExpiresAt)
	suite.Equal("10.0.0.9", *stored.IPAddress)
	suite.NotEmpty(stored.DeviceInfo)
	// One read for the user, one write for session, last login and audit.
	suite.Equal([]string{"tenant_acme", "tenant_acme"}, suite.runner.schemas)
}

func (suite *AuthServiceTestSuite) TestLoginAuditFailureRollsBackSession() {
	suite.mockTenants.EXPECT().GetBySubdomain(gomock.Any(), "acme").Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "nia@acme.test").Return(suite.activeUser(), nil)
	suite.mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockUsers.EXPECT().UpdateLastLogin(gomock.Any(), int64(3), testNow).Return(nil)
	suite.mockAudit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	resp, err := suite.authService.Login(suite.ctx, &LoginRequest{Email: "nia@acme.test", Password: "supersecret"}, ClientMeta{Host: "acme.localhost"})

	suite.Nil(resp)
	suite.True(apperrors.IsStorage(err))
	// The session insert shared the failed transaction, so it is rolled back.
	suite.Require().Len(suite.runner.results, 2)
	suite.NoError(suite.runner.results[0])
	suite.Error(suite.runner.results[1])
}

func (suite *AuthServiceTestSuite) TestLoginSessionFailureSkipsAudit() {
	suite.mockTenants.EXPECT().GetBySubdomain(gomock.Any(), "acme").Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "nia@acme.test").Return(suite.activeUser(), nil)
	suite.mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

	_, err := suite.authService.Login(suite.ctx, &LoginRequest{Email: "nia@acme.test", Password: "supersecret"}, ClientMeta{Host: "acme.localhost"})

	suite.True(apperrors.IsStorage(err))
	suite.Len(suite.runner.schemas, 2)
}

func (suite *AuthServiceTestSuite) TestLoginHashesOncePerAttempt() {
	hasher := &countingHasher{BcryptHasher: suite.hasher}
	clock := func() time.Time { return testNow }
	authService := NewAuthService(suite.mockTenants, suite.runner, suite.mockUsers,
		service.NewSessionService(suite.runner, suite.mockSessions).WithClock(clock),
		service.NewAuditService(suite.runner, suite.mockAudit).WithClock(clock),
		suite.tokens, hasher, validator.New()).WithClock(clock)

	inactive := suite.activeUser()
	inactive.IsActive = false
	noPassword := suite.activeUser()
	noPassword.PasswordHash = nil
	inactiveNoPassword := suite.activeUser()
	inactiveNoPassword.IsActive = false
	inactiveNoPassword.PasswordHash = nil

	cases := []struct {
		name         string
		user         *models.TenantUser
		wantVerifies int
		wantDummies  int
	}{
		{"unknown email", nil, 0, 1},
		{"wrong password", suite.activeUser(), 1, 0},
		{"inactive user", inactive, 1, 0},
		{"no password set", noPassword, 0, 1},
		{"inactive without password", inactiveNoPassword, 0, 1},
	}

	for _, tc := range cases {
		hasher.verifies, hasher.dummies = 0, 0
		suite.mockTenants.EXPECT().GetBySubdomain(gomock.Any(), "acme").Return(acmeTenant(), nil)
		if tc.user == nil {
			suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "nia@acme.test").Return(nil, gorm.ErrRecordNotFound)
		} else {
			suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "nia@acme.test").Return(tc.user, nil)
		}

		password := "supersecret"
		if tc.name == "wrong password" {
			password = "wrong"
		}
		_, err := authService.Login(suite.ctx, &LoginRequest{Email: "nia@acme.test", Password: password}, ClientMeta{Host: "acme.localhost"})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials, tc.name)
		suite.Equal(tc.wantVerifies, hasher.verifies, tc.name)
		suite.Equal(tc.wantDummies, hasher.dummies, tc.name)
	}
}

func (suite *AuthServiceTestSuite) TestLoginRequiresTenantSubdomain() {
	_, err := suite.authService.Login(suite.ctx, &LoginRequest{Email: "nia@acme.test", Password: "x"}, ClientMeta{Host: "localhost:5173"})

	suite.ErrorIs(err, apperrors.ErrTenantSubdomainRequired)
}

func (suite *AuthServiceTestSuite) TestLoginInactiveTenant() {
	suspended := acmeTenant()
	suspended.Status = models.TenantStatusSuspended
	suite.mockTenants.EXPECT().GetBySubdomain(gomock.Any(), "acme").Return(suspended, nil)

	_, err := suite.authService.Login(suite.ctx, &LoginRequest{Email: "nia@acme.test", Password: "x"}, ClientMeta{Host: "acme.example.com"})

	suite.ErrorIs(err, apperrors.ErrTenantInactive)
	suite.Equal(http.StatusForbidden, apperrors.StatusCode(err))
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmailAndBadPasswordLookAlike() {
	suite.mockTenants.EXPECT().GetBySubdomain(gomock.Any(), "acme").Return(acmeTenant(), nil).Times(3)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "ghost@acme.test").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "nia@acme.test").Return(suite.activeUser(), nil)

	inactive := suite.activeUser()
	inactive.IsActive = false
	inactive.Email = "off@acme.test"
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any(), "off@acme.test").Return(inactive, nil)

	meta := ClientMeta{Host: "acme.localhost"}
	_, unknownErr := suite.authService.Login(suite.ctx, &LoginRequest{Email: "ghost@acme.test", Password: "supersecret"}, meta)
	_, badErr := suite.authService.Login(suite.ctx, &LoginRequest{Email: "nia@acme.test", Password: "wrong"}, meta)
	_, inactiveErr := suite.authService.Login(suite.ctx, &LoginRequest{Email: "off@acme.test", Password: "supersecret"}, meta)

	suite.ErrorIs(unknownErr, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(badErr, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(inactiveErr, apperrors.ErrInvalidCredentials)
	suite.Equal(unknownErr.Error(), badErr.Error())
}

func (suite *AuthServiceTestSuite) TestAuthenticate() {
	token, jti := suite.issue(acmeClaims())
	sessionID := uuid.New()
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(suite.activeUser(), nil)
	suite.mockSessions.EXPECT().GetByJTI(gomock.Any(), jti).Return(&models.UserSession{
		ID:        sessionID,
		UserID:    3,
		TokenJTI:  jti,
		ExpiresAt: testNow.Add(time.Hour),
	}, nil)
	suite.mockSessions.EXPECT().Touch(gomock.Any(), sessionID, testNow).Return(nil)

	bc, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{Host: "acme.localhost", IPAddress: "10.0.0.9"})

	suite.Require().NoError(err)
	suite.Equal(int64(3), bc.User.UserID)
	suite.Equal("tenant_acme", bc.Tenant().SchemaName)
	suite.Equal(jti, bc.TokenJTI)
	suite.Equal("10.0.0.9", bc.IPAddress)
	suite.False(bc.Authorization.CanWrite)
	suite.Equal([]string{tenant.PermissionRead}, bc.Authorization.Permissions)
}

func (suite *AuthServiceTestSuite) TestAuthenticateRejectsCrossTenantHost() {
	token, _ := suite.issue(acmeClaims())
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(acmeTenant(), nil)

	_, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{Host: "globex.localhost"})

	suite.ErrorIs(err, apperrors.ErrTenantDomainMismatch)
	suite.Equal(http.StatusForbidden, apperrors.StatusCode(err))
	suite.Empty(suite.runner.schemas)
}

func (suite *AuthServiceTestSuite) TestAuthenticateRejectsRenamedTenant() {
	token, _ := suite.issue(acmeClaims())
	renamed := acmeTenant()
	renamed.Subdomain = "acme-corp"
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(renamed, nil)

	_, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{Host: "api.example.com"})

	suite.ErrorIs(err, apperrors.ErrInvalidTenantToken)
}

func (suite *AuthServiceTestSuite) TestAuthenticateUnknownTenant() {
	token, _ := suite.issue(acmeClaims())
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, apperrors.ErrTenantNotFound)

	_, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{})

	suite.ErrorIs(err, apperrors.ErrInvalidTenantToken)
	suite.Equal(http.StatusUnauthorized, apperrors.StatusCode(err))
}

func (suite *AuthServiceTestSuite) TestAuthenticateRevokedSession() {
	token, jti := suite.issue(acmeClaims())
	revokedAt := testNow.Add(-time.Minute)
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(suite.activeUser(), nil)
	suite.mockSessions.EXPECT().GetByJTI(gomock.Any(), jti).Return(&models.UserSession{
		ID:        uuid.New(),
		UserID:    3,
		TokenJTI:  jti,
		ExpiresAt: testNow.Add(time.Hour),
		RevokedAt: &revokedAt,
	}, nil)

	_, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{Host: "acme.localhost"})

	suite.ErrorIs(err, apperrors.ErrSessionRevoked)
}

func (suite *AuthServiceTestSuite) TestAuthenticateUntrackedToken() {
	token, jti := suite.issue(acmeClaims())
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(suite.activeUser(), nil)
	suite.mockSessions.EXPECT().GetByJTI(gomock.Any(), jti).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{})

	suite.ErrorIs(err, apperrors.ErrSessionRevoked)
}

func (suite *AuthServiceTestSuite) TestAuthenticateEmailMismatch() {
	claims := acmeClaims()
	claims.Subject = "someone-else@acme.test"
	token, _ := suite.issue(claims)
	suite.mockTenants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(acmeTenant(), nil)
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(suite.activeUser(), nil)

	_, err := suite.authService.Authenticate(suite.ctx, token, ClientMeta{})

	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	bc := &tenant.BaseContext{
		User:     tenant.RequestUser{UserID: 3, Email: "nia@acme.test", Role: models.RoleMember, Tenant: *tenant.InfoFromModel(acmeTenant())},
		TokenJTI: "current-jti",
	}
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(suite.activeUser(), nil)
	suite.mockUsers.EXPECT().
		UpdatePassword(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, _ int64, hash string) error {
			suite.True(suite.hasher.Verify("evenmoresecret", hash))
			return nil
		})
	suite.mockAudit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockSessions.EXPECT().
		RevokeAllForUser(gomock.Any(), int64(3), "current-jti", models.RevocationPasswordChange, "nia@acme.test", testNow).
		Return(int64(2), nil)

	revoked, err := suite.authService.ChangePassword(suite.ctx, bc, &ChangePasswordRequest{
		CurrentPassword: "supersecret",
		NewPassword:     "evenmoresecret",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(2), revoked)
}

func (suite *AuthServiceTestSuite) TestChangePasswordWrongCurrent() {
	bc := &tenant.BaseContext{
		User: tenant.RequestUser{UserID: 3, Email: "nia@acme.test", Tenant: *tenant.InfoFromModel(acmeTenant())},
	}
	suite.mockUsers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(suite.activeUser(), nil)

	_, err := suite.authService.ChangePassword(suite.ctx, bc, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "evenmoresecret",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	bc := &tenant.BaseContext{
		User:     tenant.RequestUser{UserID: 3, Email: "nia@acme.test", Tenant: *tenant.InfoFromModel(acmeTenant())},
		TokenJTI: "current-jti",
	}
	suite.mockSessions.EXPECT().
		Revoke(gomock.Any(), "current-jti", models.RevocationUserLogout, "nia@acme.test", testNow).
		Return(true, nil)

	suite.NoError(suite.authService.Logout(suite.ctx, bc))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// stubAuthenticator returns a fixed result for any token
type stubAuthenticator struct {
	bc       *tenant.BaseContext
	err      error
	gotToken string
	gotMeta  ClientMeta
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string, meta ClientMeta) (*tenant.BaseContext, error) {
	s.gotToken = token
	s.gotMeta = meta
	return s.bc, s.err
}

func memberContext(role string) *tenant.BaseContext {
	return &tenant.BaseContext{
		User:          tenant.RequestUser{UserID: 3, Email: "nia@acme.test", Role: role, Tenant: *tenant.InfoFromModel(acmeTenant())},
		Authorization: tenant.NewAuthorization(role, false),
		TokenJTI:      "jti",
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(authn Authenticator, trustedProxies ...string) *gin.Engine {
		m := NewAuthMiddleware(authn)
		router := gin.New()
		require.NoError(t, router.SetTrustedProxies(trustedProxies))
		router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
			bc, ok := GetBaseContext(c)
			require.True(t, ok)
			fromCtx, ok := tenant.FromContext(c.Request.Context())
			require.True(t, ok)
			info, ok := tenant.TenantFromContext(c.Request.Context())
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"email": bc.User.Email, "same": bc == fromCtx, "schema": info.SchemaName})
		})
		router.GET("/admin", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		router.GET("/write", m.RequireAuth(), m.RequireWrite(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return router
	}

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		newRouter(&stubAuthenticator{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		newRouter(&stubAuthenticator{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc")
		newRouter(&stubAuthenticator{err: apperrors.ErrSessionRevoked}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperrors.ErrSessionRevoked.Error(), body["error"])
	})

	t.Run("domain mismatch is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc")
		newRouter(&stubAuthenticator{err: apperrors.ErrTenantDomainMismatch}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("storage failure is not echoed", func(t *testing.T) {
		dbErr := apperrors.NewStorageError("load user", errors.New(`FATAL: password authentication failed for user "kubera"`))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc")
		newRouter(&stubAuthenticator{err: dbErr}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "password authentication")
		assert.NotContains(t, w.Body.String(), "kubera")
	})

	t.Run("forwarded header ignored without trusted proxies", func(t *testing.T) {
		stub := &stubAuthenticator{bc: memberContext(models.RoleMember)}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.RemoteAddr = "198.51.100.20:4000"
		req.Header.Set("Authorization", "Bearer abc")
		req.Header.Set("X-Forwarded-For", "1.2.3.4")
		newRouter(stub).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "198.51.100.20", stub.gotMeta.IPAddress)
	})

	t.Run("success binds context", func(t *testing.T) {
		stub := &stubAuthenticator{bc: memberContext(models.RoleMember)}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Host = "acme.localhost:8080"
		req.RemoteAddr = "192.168.1.5:5555"
		req.Header.Set("Authorization", "Bearer the-token")
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		req.Header.Set("User-Agent", "curl/8.0")
		newRouter(stub, "192.168.1.0/24", "10.0.0.0/8").ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "the-token", stub.gotToken)
		assert.Equal(t, "acme.localhost:8080", stub.gotMeta.Host)
		assert.Equal(t, "203.0.113.7", stub.gotMeta.IPAddress)
		assert.Equal(t, "curl/8.0", stub.gotMeta.UserAgent)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "nia@acme.test", body["email"])
		assert.Equal(t, true, body["same"])
		assert.Equal(t, "tenant_acme", body["schema"])
	})

	t.Run("member is not admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer abc")
		newRouter(&stubAuthenticator{bc: memberContext(models.RoleMember)}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("editor can write", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/write", nil)
		req.Header.Set("Authorization", "Bearer abc")
		newRouter(&stubAuthenticator{bc: memberContext(models.RoleEditor)}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestDeviceInfoFromUserAgent(t *testing.T) {
	assert.Nil(t, DeviceInfoFromUserAgent(""))

	cases := []struct {
		name     string
		header   string
		platform string
		browser  string
		version  string
		mobile   bool
	}{
		{
			name:     "desktop safari",
			header:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) AppleWebKit/603.3.8 (KHTML, like Gecko) Version/10.1.2 Safari/603.3.8",
			platform: ua.MacOS, browser: ua.Safari, version: "10.1.2",
		},
		{
			name:     "opera advertises chrome",
			header:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/59.0.3071.115 Safari/537.36 OPR/46.0.2597.57",
			platform: ua.MacOS, browser: ua.Opera, version: "46.0.2597.57",
		},
		{
			name:     "edge advertises chrome",
			header:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/79.0.3945.130 Safari/537.36 Edg/79.0.309.71",
			platform: ua.MacOS, browser: ua.Edge, version: "79.0.309.71",
		},
		{
			name:     "chrome on ipad",
			header:   "Mozilla/5.0 (iPad; CPU OS 10_3_2 like Mac OS X) AppleWebKit/602.1.50 (KHTML, like Gecko) CriOS/58.0.3029.113 Mobile/14F89 Safari/602.1",
			platform: ua.IOS, browser: ua.Chrome, version: "58.0.3029.113", mobile: true,
		},
		{
			name:     "safari on iphone",
			header:   "Mozilla/5.0 (iPhone; CPU iPhone OS 10_3_2 like Mac OS X) AppleWebKit/603.2.4 (KHTML, like Gecko) Version/10.0 Mobile/14F89 Safari/602.1",
			platform: ua.IOS, browser: ua.Safari, version: "10.0", mobile: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := DeviceInfoFromUserAgent(tc.header)
			require.NotNil(t, info)
			assert.Equal(t, tc.platform, info.Platform)
			assert.Equal(t, tc.browser, info.Browser)
			assert.Equal(t, tc.version, info.Version)
			assert.Equal(t, tc.mobile, info.IsMobile)
		})
	}
}

func TestRespondErrorHidesStorageDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		respondError(c, apperrors.NewStorageError("revoke session", errors.New("pq: connection to 10.0.0.3 refused")))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.NotContains(t, w.Body.String(), "revoke session")
}

func TestAuthConfig(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret, AccessTokenTTLMinutes: 15}
	authConfig := NewAuthConfig(cfg)

	assert.NoError(t, authConfig.ValidateConfig())
	assert.Equal(t, 15*time.Minute, authConfig.AccessTokenTTL)

	authConfig.JWTSecret = "short"
	assert.ErrorIs(t, authConfig.ValidateConfig(), apperrors.ErrSecretTooShort)

	authConfig.JWTSecret = testSecret
	authConfig.BcryptCost = 99
	assert.True(t, apperrors.IsConfiguration(authConfig.ValidateConfig()))
}

func TestLoginHandlerRejectsBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", NewAuthHandler(nil).Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

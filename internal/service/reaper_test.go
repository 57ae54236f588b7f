package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/mocks"
	"kubera-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionReaperRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenantRepo := mocks.NewMockTenantRepositoryInterface(ctrl)
	sessionRepo := mocks.NewMockSessionRepositoryInterface(ctrl)
	runner := &fakeRunner{}

	tenants := service.NewTenantService(tenantRepo, &fakeSchemas{}, nil, validator.New())
	sessions := service.NewSessionService(runner, sessionRepo).WithClock(fixedClock)
	reaper := service.NewSessionReaper(tenants, sessions, time.Hour, 7)

	tenantRepo.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]models.Tenant{
		{ID: 1, Subdomain: "acme", SchemaName: "tenant_acme", Status: models.TenantStatusActive},
		{ID: 2, Subdomain: "gone", SchemaName: "tenant_gone", Status: models.TenantStatusDeleted},
		{ID: 3, Subdomain: "beta", SchemaName: "tenant_beta", Status: models.TenantStatusSuspended},
	}, nil)

	cutoff := fixedNow.AddDate(0, 0, -7)
	gomock.InOrder(
		sessionRepo.EXPECT().DeleteExpiredBefore(gomock.Any(), cutoff).Return(int64(5), nil),
		sessionRepo.EXPECT().DeleteExpiredBefore(gomock.Any(), cutoff).Return(int64(0), errors.New("relation does not exist")),
	)

	result, err := reaper.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Tenants)
	assert.Equal(t, int64(5), result.Deleted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"tenant_acme", "tenant_beta"}, runner.schemas)
}

func TestSessionReaperDisabled(t *testing.T) {
	reaper := service.NewSessionReaper(nil, nil, 0, 30)

	done := make(chan struct{})
	go func() {
		reaper.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled reaper should return immediately")
	}
}

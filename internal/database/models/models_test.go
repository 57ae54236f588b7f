package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserSessionActiveInvariant(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fresh session is active", func(t *testing.T) {
		s := &UserSession{ExpiresAt: now.Add(time.Hour)}
		assert.True(t, s.IsActive(now))
		assert.Equal(t, SessionStatusActive, s.Status(now))
	})

	t.Run("expires without mutation", func(t *testing.T) {
		s := &UserSession{ExpiresAt: now.Add(time.Minute)}
		later := now.Add(time.Minute)
		assert.False(t, s.IsActive(later))
		assert.Equal(t, SessionStatusExpired, s.Status(later))
		assert.Nil(t, s.RevokedAt)
	})

	t.Run("revoked wins over remaining ttl", func(t *testing.T) {
		revokedAt := now
		s := &UserSession{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}
		assert.False(t, s.IsActive(now))
		assert.Equal(t, SessionStatusRevoked, s.Status(now))
	})
}

func TestTenantStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to TenantStatus }{
		{TenantStatusActive, TenantStatusSuspended},
		{TenantStatusSuspended, TenantStatusActive},
		{TenantStatusSuspended, TenantStatusTrial},
		{TenantStatusTrial, TenantStatusSuspended},
		{TenantStatusActive, TenantStatusPendingDeletion},
		{TenantStatusSuspended, TenantStatusPendingDeletion},
		{TenantStatusPendingDeletion, TenantStatusDeleted},
		{TenantStatusPendingDeletion, TenantStatusActive},
	}
	for _, tc := range allowed {
		assert.Truef(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to TenantStatus }{
		{TenantStatusDeleted, TenantStatusActive},
		{TenantStatusDeleted, TenantStatusPendingDeletion},
		{TenantStatusActive, TenantStatusDeleted},
		{TenantStatusPendingDeletion, TenantStatusSuspended},
		{TenantStatusActive, TenantStatusActive},
	}
	for _, tc := range denied {
		assert.Falsef(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTenantStatusCanAuthenticate(t *testing.T) {
	assert.True(t, TenantStatusActive.CanAuthenticate())
	assert.True(t, TenantStatusTrial.CanAuthenticate())
	assert.False(t, TenantStatusSuspended.CanAuthenticate())
	assert.False(t, TenantStatusPendingDeletion.CanAuthenticate())
	assert.False(t, TenantStatus("bogus").IsValid())
}

func TestInvitationValidity(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	pending := &TenantInvitation{Status: InvitationStatusPending, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, pending.IsValid(now))
	assert.False(t, pending.IsExpired(now))

	expired := &TenantInvitation{Status: InvitationStatusPending, ExpiresAt: now}
	assert.False(t, expired.IsValid(now))
	assert.True(t, expired.IsExpired(now))

	accepted := &TenantInvitation{Status: InvitationStatusAccepted, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, accepted.IsValid(now))
	assert.False(t, accepted.IsExpired(now))
}

package service

import (
	"context"
	"time"

	"kubera-backend/internal/database/models"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/tenant"
)

// SessionReaper periodically purges long-expired sessions from every tenant
// schema. Session validity never depends on it running.
type SessionReaper struct {
	tenants       *TenantService
	sessions      *SessionService
	interval      time.Duration
	retentionDays int
}

// ReapResult summarizes one reaper pass.
type ReapResult struct {
	Tenants int
	Deleted int64
	Failed  int
}

// NewSessionReaper creates a reaper. A non-positive interval disables Start.
func NewSessionReaper(tenants *TenantService, sessions *SessionService, interval time.Duration, retentionDays int) *SessionReaper {
	return &SessionReaper{
		tenants:       tenants,
		sessions:      sessions,
		interval:      interval,
		retentionDays: retentionDays,
	}
}

// Start runs the reaper until ctx is cancelled.
func (r *SessionReaper) Start(ctx context.Context) {
	if r.interval <= 0 {
		logger.WithContext(ctx).Info("Session reaper disabled")
		return
	}
	log := logger.WithContext(ctx).WithField("interval", r.interval.String())
	log.Info("Session reaper started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Session reaper stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				log.WithError(err).Warn("Session reaper pass failed")
			}
		}
	}
}

// RunOnce deletes sessions expired more than retentionDays ago in each live
// tenant. A failing tenant is logged and skipped.
func (r *SessionReaper) RunOnce(ctx context.Context) (*ReapResult, error) {
	tenants, err := r.tenants.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	result := &ReapResult{}
	for i := range tenants {
		t := &tenants[i]
		if t.Status == models.TenantStatusDeleted {
			continue
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Tenants++

		deleted, err := r.sessions.CleanupExpired(ctx, tenant.InfoFromModel(t), r.retentionDays)
		if err != nil {
			result.Failed++
			logger.WithContext(ctx).WithError(err).WithField("tenant", t.Subdomain).Warn("Session cleanup failed")
			continue
		}
		result.Deleted += deleted
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenants": result.Tenants,
		"deleted": result.Deleted,
		"failed":  result.Failed,
	}).Info("Expired sessions purged")
	return result, nil
}

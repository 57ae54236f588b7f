package service

import (
	"context"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"gorm.io/gorm"
)

// Audit actions
const (
	AuditUserLogin          = "user.login"
	AuditUserPasswordChange = "user.password_change"
	AuditUserCreate         = "user.create"
	AuditUserUpdate         = "user.update"
	AuditUserDelete         = "user.delete"
	AuditInvitationCreate   = "invitation.create"
	AuditInvitationAccept   = "invitation.accept"
	AuditInvitationRevoke   = "invitation.revoke"
	AuditTagCreate          = "tag.create"
	AuditTagUpdate          = "tag.update"
	AuditTagDelete          = "tag.delete"
	AuditContractCreate     = "contract.create"
	AuditContractUpdate     = "contract.update"
	AuditContractDelete     = "contract.delete"
	AuditContractTag        = "contract.tag"
	AuditContractUntag      = "contract.untag"
)

// AuditEntry describes one audited action.
type AuditEntry struct {
	UserID       *int64
	Action       string
	ResourceType string
	ResourceID   string
	Changes      interface{}
	IPAddress    string
	UserAgent    string
}

// EntryFor starts an audit entry attributed to the caller.
func EntryFor(bc *tenant.BaseContext, action, resourceType, resourceID string, changes interface{}) AuditEntry {
	entry := AuditEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      changes,
	}
	if bc != nil {
		userID := bc.User.UserID
		entry.UserID = &userID
		entry.IPAddress = bc.IPAddress
		entry.UserAgent = bc.UserAgent
	}
	return entry
}

// AuditLogListResponse is the paginated audit trail
type AuditLogListResponse struct {
	Logs   []models.AuditLog `json:"logs"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// AuditService writes and reads the tenant-isolated audit trail
type AuditService struct {
	runner tenant.Runner
	repo   repository.AuditLogRepositoryInterface
	now    Clock
}

// NewAuditService creates a new audit service
func NewAuditService(runner tenant.Runner, repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{runner: runner, repo: repo, now: systemClock}
}

// WithClock replaces the service clock.
func (s *AuditService) WithClock(now Clock) *AuditService {
	s.now = now
	return s
}

// Record appends an entry inside an already bound tenant transaction, so the
// audit row commits or rolls back with the change it describes.
func (s *AuditService) Record(tx *gorm.DB, entry AuditEntry) error {
	row := &models.AuditLog{
		UserID:       entry.UserID,
		Action:       entry.Action,
		ResourceType: strPtr(entry.ResourceType),
		ResourceID:   strPtr(entry.ResourceID),
		Changes:      mustJSON(entry.Changes),
		Timestamp:    s.now(),
		IPAddress:    strPtr(entry.IPAddress),
		UserAgent:    strPtr(entry.UserAgent),
	}
	return apperrors.NewStorageError("write audit log", s.repo.Create(tx, row))
}

// Log appends an entry in its own transaction.
func (s *AuditService) Log(ctx context.Context, info *tenant.Info, entry AuditEntry) error {
	return s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		return s.Record(tx, entry)
	})
}

// AuditLogQuery filters the audit trail listing
type AuditLogQuery struct {
	UserID       *int64
	Action       string
	ResourceType string
	ResourceID   string
	SinceHours   int
	Limit        int
	Offset       int
}

// List returns the caller's tenant audit trail, newest first.
func (s *AuditService) List(ctx context.Context, bc *tenant.BaseContext, query AuditLogQuery) (*AuditLogListResponse, error) {
	limit, offset := normalizePagination(query.Limit, query.Offset)
	filter := repository.AuditLogFilter{
		UserID:       query.UserID,
		Action:       query.Action,
		ResourceType: query.ResourceType,
		ResourceID:   query.ResourceID,
	}
	if query.SinceHours > 0 {
		since := s.now().Add(-time.Duration(query.SinceHours) * time.Hour)
		filter.Since = &since
	}

	resp := &AuditLogListResponse{Limit: limit, Offset: offset}
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		logs, total, err := s.repo.List(tx, filter, limit, offset)
		if err != nil {
			return apperrors.NewStorageError("list audit logs", err)
		}
		resp.Logs = logs
		resp.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	if resp.Logs == nil {
		resp.Logs = []models.AuditLog{}
	}
	return resp, nil
}

package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const invitationTokenBytes = 32

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// InvitationService issues and redeems invitations into a tenant
type InvitationService struct {
	runner    tenant.Runner
	repo      repository.InvitationRepositoryInterface
	users     repository.TenantUserRepositoryInterface
	audit     *AuditService
	hasher    PasswordHasher
	validator *validator.Validate
	ttl       time.Duration
	now       Clock
}

// NewInvitationService creates a new invitation service
func NewInvitationService(runner tenant.Runner, repo repository.InvitationRepositoryInterface, users repository.TenantUserRepositoryInterface, audit *AuditService, hasher PasswordHasher, validator *validator.Validate, ttl time.Duration) *InvitationService {
	return &InvitationService{
		runner:    runner,
		repo:      repo,
		users:     users,
		audit:     audit,
		hasher:    hasher,
		validator: validator,
		ttl:       ttl,
		now:       systemClock,
	}
}

// WithClock replaces the service clock.
func (s *InvitationService) WithClock(now Clock) *InvitationService {
	s.now = now
	return s
}

// CreateInvitationRequest represents the data needed to invite someone
type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"omitempty,oneof=owner admin manager editor member"`
}

// AcceptInvitationRequest represents the data needed to redeem an invitation
type AcceptInvitationRequest struct {
	Token     string `json:"token" validate:"required"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// InvitationResponse is the API view of an invitation. The token is only
// included right after creation.
type InvitationResponse struct {
	ID         int64                   `json:"id"`
	Email      string                  `json:"email"`
	Role       string                  `json:"role"`
	Status     models.InvitationStatus `json:"status"`
	ExpiresAt  time.Time               `json:"expires_at"`
	AcceptedAt *time.Time              `json:"accepted_at,omitempty"`
	CreatedBy  string                  `json:"created_by"`
	CreatedAt  time.Time               `json:"created_at"`
	IsValid    bool                    `json:"is_valid"`
	Token      string                  `json:"token,omitempty"`
	TenantName string                  `json:"tenant_name,omitempty"`
}

func (s *InvitationService) toResponse(inv *models.TenantInvitation) InvitationResponse {
	return InvitationResponse{
		ID:         inv.ID,
		Email:      inv.Email,
		Role:       inv.Role,
		Status:     inv.Status,
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
		CreatedBy:  inv.CreatedBy,
		CreatedAt:  inv.CreatedAt,
		IsValid:    inv.IsValid(s.now()),
	}
}

// Create invites an email address into the tenant. createdBy is recorded as-is
// so admin tooling can invite without a signed-in user.
func (s *InvitationService) Create(ctx context.Context, info *tenant.Info, bc *tenant.BaseContext, req *CreateInvitationRequest, createdBy string) (*InvitationResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}

	token, err := randomToken(invitationTokenBytes)
	if err != nil {
		return nil, err
	}
	inv := &models.TenantInvitation{
		TenantID:  info.ID,
		Email:     req.Email,
		Role:      req.Role,
		Token:     token,
		Status:    models.InvitationStatusPending,
		ExpiresAt: s.now().Add(s.ttl),
		CreatedBy: createdBy,
	}

	err = s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		if _, err := s.users.GetByEmail(tx, req.Email); err == nil {
			return apperrors.ErrUserExists
		} else if !repository.IsNotFound(err) {
			return apperrors.NewStorageError("lookup user", err)
		}
		if err := s.repo.Create(tx, inv); err != nil {
			return apperrors.NewStorageError("create invitation", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditInvitationCreate, "invitation", strconv.FormatInt(inv.ID, 10),
			map[string]interface{}{"email": inv.Email, "role": inv.Role}))
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invitation_id": inv.ID,
		"role":          inv.Role,
	}).Info("Invitation created")

	resp := s.toResponse(inv)
	resp.Token = token
	return &resp, nil
}

// GetByToken looks up an invitation for the pre-auth accept flow.
func (s *InvitationService) GetByToken(ctx context.Context, info *tenant.Info, token string) (*InvitationResponse, error) {
	var resp *InvitationResponse
	err := s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		inv, err := s.repo.GetByToken(tx, token)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrInvitationNotFound
			}
			return apperrors.NewStorageError("load invitation", err)
		}
		r := s.toResponse(inv)
		r.TenantName = info.Name
		resp = &r
		return nil
	})
	return resp, err
}

// Accept redeems a pending invitation, creating the user in the same transaction.
func (s *InvitationService) Accept(ctx context.Context, info *tenant.Info, req *AcceptInvitationRequest) (*models.TenantUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var user *models.TenantUser
	err = s.runner.Run(ctx, info, func(tx *gorm.DB) error {
		inv, err := s.repo.GetByToken(tx, req.Token)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrInvitationNotFound
			}
			return apperrors.NewStorageError("load invitation", err)
		}
		now := s.now()
		if !inv.IsValid(now) {
			return apperrors.ErrInvitationInvalid
		}

		if _, err := s.users.GetByEmail(tx, inv.Email); err == nil {
			return apperrors.ErrUserExists
		} else if !repository.IsNotFound(err) {
			return apperrors.NewStorageError("lookup user", err)
		}

		user = &models.TenantUser{
			Email:        inv.Email,
			PasswordHash: &hash,
			FirstName:    strPtr(strings.TrimSpace(req.FirstName)),
			LastName:     strPtr(strings.TrimSpace(req.LastName)),
			Role:         inv.Role,
			IsOwner:      inv.Role == models.RoleOwner,
			IsActive:     true,
		}
		if err := s.users.Create(tx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrUserExists
			}
			return apperrors.NewStorageError("create user", err)
		}

		inv.Status = models.InvitationStatusAccepted
		inv.AcceptedAt = &now
		if err := s.repo.Update(tx, inv); err != nil {
			return apperrors.NewStorageError("accept invitation", err)
		}

		userID := user.ID
		return s.audit.Record(tx, AuditEntry{
			UserID:       &userID,
			Action:       AuditInvitationAccept,
			ResourceType: "invitation",
			ResourceID:   strconv.FormatInt(inv.ID, 10),
			Changes:      map[string]interface{}{"email": inv.Email, "role": inv.Role},
		})
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("Invitation accepted")
	return user, nil
}

// Revoke withdraws a pending invitation.
func (s *InvitationService) Revoke(ctx context.Context, bc *tenant.BaseContext, id int64) error {
	return s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		inv, err := s.repo.GetByID(tx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrInvitationNotFound
			}
			return apperrors.NewStorageError("load invitation", err)
		}
		if inv.Status != models.InvitationStatusPending {
			return apperrors.ErrInvitationInvalid
		}
		inv.Status = models.InvitationStatusRevoked
		if err := s.repo.Update(tx, inv); err != nil {
			return apperrors.NewStorageError("revoke invitation", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditInvitationRevoke, "invitation", strconv.FormatInt(id, 10), nil))
	})
}

// List returns the tenant's invitations, optionally filtered by status.
func (s *InvitationService) List(ctx context.Context, bc *tenant.BaseContext, status *models.InvitationStatus) ([]InvitationResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	var resp []InvitationResponse
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		invitations, err := s.repo.List(tx, status)
		if err != nil {
			return apperrors.NewStorageError("list invitations", err)
		}
		resp = make([]InvitationResponse, 0, len(invitations))
		for i := range invitations {
			resp = append(resp, s.toResponse(&invitations[i]))
		}
		return nil
	})
	return resp, err
}

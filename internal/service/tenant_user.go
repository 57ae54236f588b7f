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

// TenantUserService manages users inside the caller's tenant
type TenantUserService struct {
	runner    tenant.Runner
	repo      repository.TenantUserRepositoryInterface
	sessions  repository.SessionRepositoryInterface
	audit     *AuditService
	hasher    PasswordHasher
	validator *validator.Validate
	now       Clock
}

// NewTenantUserService creates a new tenant user service
func NewTenantUserService(runner tenant.Runner, repo repository.TenantUserRepositoryInterface, sessions repository.SessionRepositoryInterface, audit *AuditService, hasher PasswordHasher, validator *validator.Validate) *TenantUserService {
	return &TenantUserService{
		runner:    runner,
		repo:      repo,
		sessions:  sessions,
		audit:     audit,
		hasher:    hasher,
		validator: validator,
		now:       systemClock,
	}
}

// WithClock replaces the service clock.
func (s *TenantUserService) WithClock(now Clock) *TenantUserService {
	s.now = now
	return s
}

// CreateUserRequest represents the data needed to create a tenant user
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Role      string `json:"role" validate:"omitempty,oneof=admin manager editor member"`
}

// UpdateUserRequest represents the data needed to update a tenant user
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin manager editor member"`
	IsActive  *bool   `json:"is_active"`
}

// UserResponse is the API view of a tenant user
type UserResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsOwner   bool       `json:"is_owner"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// UsersListResponse is the paginated user listing
type UsersListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ToUserResponse renders a tenant user for the API.
func ToUserResponse(u *models.TenantUser) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: derefStr(u.FirstName),
		LastName:  derefStr(u.LastName),
		Role:      u.Role,
		IsOwner:   u.IsOwner,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// List returns the tenant's users
func (s *TenantUserService) List(ctx context.Context, bc *tenant.BaseContext, limit, offset int) (*UsersListResponse, error) {
	limit, offset = normalizePagination(limit, offset)
	resp := &UsersListResponse{Users: []UserResponse{}, Limit: limit, Offset: offset}

	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		users, total, err := s.repo.List(tx, limit, offset)
		if err != nil {
			return apperrors.NewStorageError("list users", err)
		}
		for i := range users {
			resp.Users = append(resp.Users, ToUserResponse(&users[i]))
		}
		resp.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns one user of the tenant
func (s *TenantUserService) Get(ctx context.Context, bc *tenant.BaseContext, id int64) (*UserResponse, error) {
	var resp *UserResponse
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		user, err := s.load(tx, id)
		if err != nil {
			return err
		}
		r := ToUserResponse(user)
		resp = &r
		return nil
	})
	return resp, err
}

// Create adds a user to the tenant
func (s *TenantUserService) Create(ctx context.Context, bc *tenant.BaseContext, req *CreateUserRequest) (*UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.TenantUser{
		Email:        req.Email,
		PasswordHash: &hash,
		FirstName:    strPtr(strings.TrimSpace(req.FirstName)),
		LastName:     strPtr(strings.TrimSpace(req.LastName)),
		Role:         req.Role,
		IsActive:     true,
	}

	err = s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		if _, err := s.repo.GetByEmail(tx, req.Email); err == nil {
			return apperrors.ErrUserExists
		} else if !repository.IsNotFound(err) {
			return apperrors.NewStorageError("lookup user", err)
		}
		if err := s.repo.Create(tx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrUserExists
			}
			return apperrors.NewStorageError("create user", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditUserCreate, "user", strconv.FormatInt(user.ID, 10),
			map[string]interface{}{"email": user.Email, "role": user.Role}))
	})
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Update changes profile, role or active flag of a user. Deactivating a user
// revokes all of their sessions.
func (s *TenantUserService) Update(ctx context.Context, bc *tenant.BaseContext, id int64, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var resp *UserResponse
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		user, err := s.load(tx, id)
		if err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if req.Role != nil && *req.Role != user.Role {
			if id == bc.User.UserID {
				return apperrors.ErrCannotChangeOwnRole
			}
			if user.IsOwner {
				return apperrors.ErrCannotDeleteOwner
			}
			changes["role"] = map[string]string{"old": user.Role, "new": *req.Role}
			user.Role = *req.Role
		}
		if req.FirstName != nil {
			changes["first_name"] = *req.FirstName
			user.FirstName = strPtr(strings.TrimSpace(*req.FirstName))
		}
		if req.LastName != nil {
			changes["last_name"] = *req.LastName
			user.LastName = strPtr(strings.TrimSpace(*req.LastName))
		}

		deactivated := false
		if req.IsActive != nil && *req.IsActive != user.IsActive {
			if id == bc.User.UserID && !*req.IsActive {
				return apperrors.ErrCannotDeleteSelf
			}
			if user.IsOwner && !*req.IsActive {
				return apperrors.ErrCannotDeleteOwner
			}
			changes["is_active"] = *req.IsActive
			deactivated = !*req.IsActive
			user.IsActive = *req.IsActive
		}

		if err := s.repo.Update(tx, user); err != nil {
			return apperrors.NewStorageError("update user", err)
		}

		if deactivated {
			n, err := s.sessions.RevokeAllForUser(tx, user.ID, "", models.RevocationAccountSuspension, bc.User.Email, s.now())
			if err != nil {
				return apperrors.NewStorageError("revoke user sessions", err)
			}
			changes["sessions_revoked"] = n
		}

		if err := s.audit.Record(tx, EntryFor(bc, AuditUserUpdate, "user", strconv.FormatInt(user.ID, 10), changes)); err != nil {
			return err
		}
		r := ToUserResponse(user)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete removes a user from the tenant together with their sessions' validity.
func (s *TenantUserService) Delete(ctx context.Context, bc *tenant.BaseContext, id int64) error {
	if id == bc.User.UserID {
		return apperrors.ErrCannotDeleteSelf
	}

	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		user, err := s.load(tx, id)
		if err != nil {
			return err
		}
		if user.IsOwner {
			return apperrors.ErrCannotDeleteOwner
		}
		if _, err := s.sessions.RevokeAllForUser(tx, user.ID, "", models.RevocationAdminAction, bc.User.Email, s.now()); err != nil {
			return apperrors.NewStorageError("revoke user sessions", err)
		}
		if err := s.repo.Delete(tx, user.ID); err != nil {
			return apperrors.NewStorageError("delete user", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditUserDelete, "user", strconv.FormatInt(id, 10),
			map[string]interface{}{"email": user.Email}))
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("deleted_user_id", id).Info("User deleted")
	return nil
}

func (s *TenantUserService) load(tx *gorm.DB, id int64) (*models.TenantUser, error) {
	user, err := s.repo.GetByID(tx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError("load user", err)
	}
	return user, nil
}

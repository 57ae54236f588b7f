package service

import (
	"context"
	"strconv"
	"strings"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TagService provides business logic for tags
type TagService struct {
	runner    tenant.Runner
	repo      repository.TagRepositoryInterface
	links     repository.TagContractRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
	now       Clock
}

// NewTagService creates a new tag service
func NewTagService(runner tenant.Runner, repo repository.TagRepositoryInterface, links repository.TagContractRepositoryInterface, audit *AuditService, validator *validator.Validate) *TagService {
	return &TagService{
		runner:    runner,
		repo:      repo,
		links:     links,
		audit:     audit,
		validator: validator,
		now:       systemClock,
	}
}

// WithClock replaces the service clock.
func (s *TagService) WithClock(now Clock) *TagService {
	s.now = now
	return s
}

// CreateTagRequest represents the data needed to create a tag
type CreateTagRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateTagRequest represents the data needed to update a tag
type UpdateTagRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// TagListResponse is the paginated tag listing
type TagListResponse struct {
	Tags   []models.Tag `json:"tags"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// Create creates a new tag
func (s *TagService) Create(ctx context.Context, bc *tenant.BaseContext, req *CreateTagRequest) (*models.Tag, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	tag := &models.Tag{
		Name:        req.Name,
		Description: req.Description,
	}
	tag.CreatedAt = s.now()
	tag.CreatedBy = strPtr(bc.User.Email)

	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		if err := s.ensureNameFree(tx, tag.Name, 0); err != nil {
			return err
		}
		if err := s.repo.Create(tx, tag); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrTagExists
			}
			return apperrors.NewStorageError("create tag", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditTagCreate, "tag", strconv.FormatInt(tag.ID, 10),
			map[string]interface{}{"name": tag.Name}))
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Get retrieves a tag by ID
func (s *TagService) Get(ctx context.Context, bc *tenant.BaseContext, id int64) (*models.Tag, error) {
	var tag *models.Tag
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		var err error
		tag, err = s.load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// List retrieves tags ordered by name
func (s *TagService) List(ctx context.Context, bc *tenant.BaseContext, limit, offset int) (*TagListResponse, error) {
	limit, offset = normalizePagination(limit, offset)
	resp := &TagListResponse{Tags: []models.Tag{}, Limit: limit, Offset: offset}

	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		tags, total, err := s.repo.List(tx, limit, offset)
		if err != nil {
			return apperrors.NewStorageError("list tags", err)
		}
		if tags != nil {
			resp.Tags = tags
		}
		resp.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update renames or re-describes a tag
func (s *TagService) Update(ctx context.Context, bc *tenant.BaseContext, id int64, req *UpdateTagRequest) (*models.Tag, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var tag *models.Tag
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		var err error
		tag, err = s.load(tx, id)
		if err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if req.Name != nil && *req.Name != tag.Name {
			if err := s.ensureNameFree(tx, *req.Name, tag.ID); err != nil {
				return err
			}
			changes["name"] = map[string]string{"old": tag.Name, "new": *req.Name}
			tag.Name = *req.Name
		}
		if req.Description != nil {
			changes["description"] = *req.Description
			tag.Description = req.Description
		}

		now := s.now()
		tag.LastUpdatedAt = &now
		tag.LastUpdatedBy = strPtr(bc.User.Email)

		if err := s.repo.Update(tx, tag); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrTagExists
			}
			return apperrors.NewStorageError("update tag", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditTagUpdate, "tag", strconv.FormatInt(tag.ID, 10), changes))
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag and all of its contract links in one transaction
func (s *TagService) Delete(ctx context.Context, bc *tenant.BaseContext, id int64) error {
	return s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		tag, err := s.load(tx, id)
		if err != nil {
			return err
		}
		unlinked, err := s.links.DeleteByTag(tx, tag.ID)
		if err != nil {
			return apperrors.NewStorageError("delete tag links", err)
		}
		if err := s.repo.Delete(tx, tag.ID); err != nil {
			return apperrors.NewStorageError("delete tag", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditTagDelete, "tag", strconv.FormatInt(id, 10),
			map[string]interface{}{"name": tag.Name, "links_removed": unlinked}))
	})
}

func (s *TagService) ensureNameFree(tx *gorm.DB, name string, selfID int64) error {
	existing, err := s.repo.GetByName(tx, name)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil
		}
		return apperrors.NewStorageError("lookup tag", err)
	}
	if existing.ID != selfID {
		return apperrors.ErrTagExists
	}
	return nil
}

func (s *TagService) load(tx *gorm.DB, id int64) (*models.Tag, error) {
	tag, err := s.repo.GetByID(tx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, apperrors.NewStorageError("load tag", err)
	}
	return tag, nil
}

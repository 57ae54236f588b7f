package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ContractService provides business logic for contracts and their tag links
type ContractService struct {
	runner    tenant.Runner
	repo      repository.ContractRepositoryInterface
	tags      repository.TagRepositoryInterface
	links     repository.TagContractRepositoryInterface
	audit     *AuditService
	validator *validator.Validate
	now       Clock
}

// NewContractService creates a new contract service
func NewContractService(runner tenant.Runner, repo repository.ContractRepositoryInterface, tags repository.TagRepositoryInterface, links repository.TagContractRepositoryInterface, audit *AuditService, validator *validator.Validate) *ContractService {
	return &ContractService{
		runner:    runner,
		repo:      repo,
		tags:      tags,
		links:     links,
		audit:     audit,
		validator: validator,
		now:       systemClock,
	}
}

// WithClock replaces the service clock.
func (s *ContractService) WithClock(now Clock) *ContractService {
	s.now = now
	return s
}

// CreateContractRequest represents the data needed to create a contract.
// Dates use the YYYY-MM-DD layout.
type CreateContractRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=255"`
	ServiceProviderID int64    `json:"service_provider_id" validate:"required,gt=0"`
	ReferenceNumber   *string  `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Description       *string  `json:"description,omitempty"`
	StartDate         string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate           *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalValue        *float64 `json:"total_value,omitempty" validate:"omitempty,gte=0"`
	InternalOwner     *string  `json:"internal_owner,omitempty" validate:"omitempty,max=255"`
	RenewalAlertFlag  bool     `json:"renewal_alert_flag"`
	Notes             *string  `json:"notes,omitempty"`
}

// UpdateContractRequest represents a partial contract update
type UpdateContractRequest struct {
	Title            *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	ReferenceNumber  *string  `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Description      *string  `json:"description,omitempty"`
	StartDate        *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalValue       *float64 `json:"total_value,omitempty" validate:"omitempty,gte=0"`
	InternalOwner    *string  `json:"internal_owner,omitempty" validate:"omitempty,max=255"`
	RenewalAlertFlag *bool    `json:"renewal_alert_flag,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// ContractWithTags composes a contract with its linked tags for responses.
type ContractWithTags struct {
	models.Contract
	Tags []models.Tag `json:"tags"`
}

// ContractListResponse is the paginated contract listing
type ContractListResponse struct {
	Contracts []ContractWithTags `json:"contracts"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// Create creates a new contract
func (s *ContractService) Create(ctx context.Context, bc *tenant.BaseContext, req *CreateContractRequest) (*ContractWithTags, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	start, end, err := parseContractDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	contract := &models.Contract{
		Title:             req.Title,
		ServiceProviderID: req.ServiceProviderID,
		ReferenceNumber:   req.ReferenceNumber,
		Description:       req.Description,
		StartDate:         start,
		EndDate:           end,
		TotalValue:        req.TotalValue,
		InternalOwner:     req.InternalOwner,
		RenewalAlertFlag:  req.RenewalAlertFlag,
		Notes:             req.Notes,
	}
	contract.CreatedAt = s.now()
	contract.CreatedBy = strPtr(bc.User.Email)

	err = s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		if err := s.repo.Create(tx, contract); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrContractExists
			}
			return apperrors.NewStorageError("create contract", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditContractCreate, "contract", strconv.FormatInt(contract.ID, 10),
			map[string]interface{}{"title": contract.Title}))
	})
	if err != nil {
		return nil, err
	}
	return &ContractWithTags{Contract: *contract, Tags: []models.Tag{}}, nil
}

// Get retrieves a contract together with its tags
func (s *ContractService) Get(ctx context.Context, bc *tenant.BaseContext, id int64) (*ContractWithTags, error) {
	var resp *ContractWithTags
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		contract, err := s.load(tx, id)
		if err != nil {
			return err
		}
		composed, err := s.withTags(tx, []models.Contract{*contract})
		if err != nil {
			return err
		}
		resp = &composed[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List retrieves contracts, newest first, each with its tags
func (s *ContractService) List(ctx context.Context, bc *tenant.BaseContext, limit, offset int) (*ContractListResponse, error) {
	limit, offset = normalizePagination(limit, offset)
	resp := &ContractListResponse{Contracts: []ContractWithTags{}, Limit: limit, Offset: offset}

	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		contracts, total, err := s.repo.List(tx, limit, offset)
		if err != nil {
			return apperrors.NewStorageError("list contracts", err)
		}
		composed, err := s.withTags(tx, contracts)
		if err != nil {
			return err
		}
		resp.Contracts = composed
		resp.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Update applies a partial update to a contract
func (s *ContractService) Update(ctx context.Context, bc *tenant.BaseContext, id int64, req *UpdateContractRequest) (*ContractWithTags, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var resp *ContractWithTags
	err := s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		contract, err := s.load(tx, id)
		if err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if req.Title != nil {
			contract.Title = strings.TrimSpace(*req.Title)
			changes["title"] = contract.Title
		}
		if req.ReferenceNumber != nil {
			contract.ReferenceNumber = req.ReferenceNumber
			changes["reference_number"] = *req.ReferenceNumber
		}
		if req.Description != nil {
			contract.Description = req.Description
			changes["description"] = *req.Description
		}
		if req.StartDate != nil {
			start, _ := time.Parse(dateLayout, *req.StartDate)
			contract.StartDate = start
			changes["start_date"] = *req.StartDate
		}
		if req.EndDate != nil {
			end, _ := time.Parse(dateLayout, *req.EndDate)
			contract.EndDate = &end
			changes["end_date"] = *req.EndDate
		}
		if contract.EndDate != nil && contract.EndDate.Before(contract.StartDate) {
			return apperrors.NewValidationError("end_date", "end_date must not be before start_date")
		}
		if req.TotalValue != nil {
			contract.TotalValue = req.TotalValue
			changes["total_value"] = *req.TotalValue
		}
		if req.InternalOwner != nil {
			contract.InternalOwner = req.InternalOwner
			changes["internal_owner"] = *req.InternalOwner
		}
		if req.RenewalAlertFlag != nil {
			contract.RenewalAlertFlag = *req.RenewalAlertFlag
			changes["renewal_alert_flag"] = *req.RenewalAlertFlag
		}
		if req.Notes != nil {
			contract.Notes = req.Notes
			changes["notes"] = *req.Notes
		}

		now := s.now()
		contract.LastUpdatedAt = &now
		contract.LastUpdatedBy = strPtr(bc.User.Email)

		if err := s.repo.Update(tx, contract); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrContractExists
			}
			return apperrors.NewStorageError("update contract", err)
		}
		if err := s.audit.Record(tx, EntryFor(bc, AuditContractUpdate, "contract", strconv.FormatInt(contract.ID, 10), changes)); err != nil {
			return err
		}

		composed, err := s.withTags(tx, []models.Contract{*contract})
		if err != nil {
			return err
		}
		resp = &composed[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete removes a contract and all of its tag links in one transaction
func (s *ContractService) Delete(ctx context.Context, bc *tenant.BaseContext, id int64) error {
	return s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		contract, err := s.load(tx, id)
		if err != nil {
			return err
		}
		unlinked, err := s.links.DeleteByContract(tx, contract.ID)
		if err != nil {
			return apperrors.NewStorageError("delete contract links", err)
		}
		if err := s.repo.Delete(tx, contract.ID); err != nil {
			return apperrors.NewStorageError("delete contract", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditContractDelete, "contract", strconv.FormatInt(id, 10),
			map[string]interface{}{"title": contract.Title, "links_removed": unlinked}))
	})
}

// LinkTag attaches a tag to a contract. Both must exist and the pair must not
// be linked yet.
func (s *ContractService) LinkTag(ctx context.Context, bc *tenant.BaseContext, contractID, tagID int64) error {
	return s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		if _, err := s.load(tx, contractID); err != nil {
			return err
		}
		if _, err := s.tags.GetByID(tx, tagID); err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrTagNotFound
			}
			return apperrors.NewStorageError("load tag", err)
		}

		exists, err := s.links.Exists(tx, tagID, contractID)
		if err != nil {
			return apperrors.NewStorageError("check tag link", err)
		}
		if exists {
			return apperrors.ErrTagContractLinkExists
		}

		link := &models.TagContract{TagID: tagID, ContractID: contractID}
		link.CreatedAt = s.now()
		link.CreatedBy = strPtr(bc.User.Email)
		if err := s.links.Create(tx, link); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrTagContractLinkExists
			}
			return apperrors.NewStorageError("create tag link", err)
		}
		return s.audit.Record(tx, EntryFor(bc, AuditContractTag, "contract", strconv.FormatInt(contractID, 10),
			map[string]interface{}{"tag_id": tagID}))
	})
}

// UnlinkTag detaches a tag from a contract
func (s *ContractService) UnlinkTag(ctx context.Context, bc *tenant.BaseContext, contractID, tagID int64) error {
	return s.runner.Run(ctx, bc.Tenant(), func(tx *gorm.DB) error {
		removed, err := s.links.Delete(tx, tagID, contractID)
		if err != nil {
			return apperrors.NewStorageError("delete tag link", err)
		}
		if !removed {
			return apperrors.ErrTagLinkNotFound
		}
		return s.audit.Record(tx, EntryFor(bc, AuditContractUntag, "contract", strconv.FormatInt(contractID, 10),
			map[string]interface{}{"tag_id": tagID}))
	})
}

func (s *ContractService) withTags(tx *gorm.DB, contracts []models.Contract) ([]ContractWithTags, error) {
	result := make([]ContractWithTags, 0, len(contracts))
	if len(contracts) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}
	tagIDs, err := s.links.TagIDsByContract(tx, ids)
	if err != nil {
		return nil, apperrors.NewStorageError("load tag links", err)
	}

	var allIDs []int64
	seen := make(map[int64]struct{})
	for _, list := range tagIDs {
		for _, id := range list {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				allIDs = append(allIDs, id)
			}
		}
	}
	tags, err := s.tags.GetByIDs(tx, allIDs)
	if err != nil {
		return nil, apperrors.NewStorageError("load tags", err)
	}
	byID := make(map[int64]models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}

	for _, c := range contracts {
		entry := ContractWithTags{Contract: c, Tags: []models.Tag{}}
		for _, id := range tagIDs[c.ID] {
			// links to rows removed outside the service are skipped
			if t, ok := byID[id]; ok {
				entry.Tags = append(entry.Tags, t)
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *ContractService) load(tx *gorm.DB, id int64) (*models.Contract, error) {
	contract, err := s.repo.GetByID(tx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, apperrors.NewStorageError("load contract", err)
	}
	return contract, nil
}

func parseContractDates(startRaw string, endRaw *string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return time.Time{}, nil, apperrors.NewValidationError("start_date", "must be YYYY-MM-DD")
	}
	if endRaw == nil {
		return start, nil, nil
	}
	end, err := time.Parse(dateLayout, *endRaw)
	if err != nil {
		return time.Time{}, nil, apperrors.NewValidationError("end_date", "must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, nil, apperrors.NewValidationError("end_date", "end_date must not be before start_date")
	}
	return start, &end, nil
}

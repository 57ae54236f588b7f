package repository

import (
	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// InvitationRepository handles database operations for tenant invitations
type InvitationRepository struct{}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository() *InvitationRepository {
	return &InvitationRepository{}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(tx *gorm.DB, invitation *models.TenantInvitation) error {
	return tx.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(tx *gorm.DB, id int64) (*models.TenantInvitation, error) {
	var invitation models.TenantInvitation
	err := tx.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByToken retrieves an invitation by its token
func (r *InvitationRepository) GetByToken(tx *gorm.DB, token string) (*models.TenantInvitation, error) {
	var invitation models.TenantInvitation
	err := tx.First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// List retrieves invitations, newest first, optionally filtered by status
func (r *InvitationRepository) List(tx *gorm.DB, status *models.InvitationStatus) ([]models.TenantInvitation, error) {
	var invitations []models.TenantInvitation
	query := tx.Model(&models.TenantInvitation{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// Update saves every column of the invitation
func (r *InvitationRepository) Update(tx *gorm.DB, invitation *models.TenantInvitation) error {
	return tx.Save(invitation).Error
}

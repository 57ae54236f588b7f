package repository

import (
	"strings"
	"time"

	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// TenantUserRepository handles database operations for users inside a tenant schema
type TenantUserRepository struct{}

// NewTenantUserRepository creates a new tenant user repository
func NewTenantUserRepository() *TenantUserRepository {
	return &TenantUserRepository{}
}

// Create creates a new user
func (r *TenantUserRepository) Create(tx *gorm.DB, user *models.TenantUser) error {
	return tx.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *TenantUserRepository) GetByID(tx *gorm.DB, id int64) (*models.TenantUser, error) {
	var user models.TenantUser
	err := tx.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *TenantUserRepository) GetByEmail(tx *gorm.DB, email string) (*models.TenantUser, error) {
	var user models.TenantUser
	err := tx.First(&user, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users with pagination
func (r *TenantUserRepository) List(tx *gorm.DB, limit, offset int) ([]models.TenantUser, int64, error) {
	var users []models.TenantUser
	var total int64

	// Get total count
	if err := tx.Model(&models.TenantUser{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := tx.Model(&models.TenantUser{}).Order("id ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update saves every column of the user
func (r *TenantUserRepository) Update(tx *gorm.DB, user *models.TenantUser) error {
	return tx.Save(user).Error
}

// UpdateLastLogin stamps a successful login
func (r *TenantUserRepository) UpdateLastLogin(tx *gorm.DB, id int64, at time.Time) error {
	return tx.Model(&models.TenantUser{}).Where("id = ?", id).Update("last_login", at).Error
}

// UpdatePassword replaces the stored password hash
func (r *TenantUserRepository) UpdatePassword(tx *gorm.DB, id int64, passwordHash string) error {
	result := tx.Model(&models.TenantUser{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user
func (r *TenantUserRepository) Delete(tx *gorm.DB, id int64) error {
	return tx.Delete(&models.TenantUser{}, "id = ?", id).Error
}

package repository

import (
	"time"

	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuditLogFilter narrows audit log listings. Zero values are ignored.
type AuditLogFilter struct {
	UserID       *int64
	Action       string
	ResourceType string
	ResourceID   string
	Since        *time.Time
}

// AuditLogRepository handles the per-tenant audit trail
type AuditLogRepository struct{}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

// Create appends an audit entry
func (r *AuditLogRepository) Create(tx *gorm.DB, entry *models.AuditLog) error {
	return tx.Create(entry).Error
}

// List retrieves audit entries, newest first
func (r *AuditLogRepository) List(tx *gorm.DB, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	if err := tx.Model(&models.AuditLog{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Model(&models.AuditLog{}).Scopes(filter.scope).
		Order("timestamp DESC").Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (f AuditLogFilter) scope(db *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.Action != "" {
		db = db.Where("action = ?", f.Action)
	}
	if f.ResourceType != "" {
		db = db.Where("resource_type = ?", f.ResourceType)
	}
	if f.ResourceID != "" {
		db = db.Where("resource_id = ?", f.ResourceID)
	}
	if f.Since != nil {
		db = db.Where("timestamp >= ?", *f.Since)
	}
	return db
}

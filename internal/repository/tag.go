package repository

import (
	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// TagRepository handles database operations for tags
type TagRepository struct{}

// NewTagRepository creates a new tag repository
func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

// Create creates a new tag
func (r *TagRepository) Create(tx *gorm.DB, tag *models.Tag) error {
	return tx.Create(tag).Error
}

// GetByID retrieves a tag by ID
func (r *TagRepository) GetByID(tx *gorm.DB, id int64) (*models.Tag, error) {
	var tag models.Tag
	err := tx.First(&tag, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByName retrieves a tag by name
func (r *TagRepository) GetByName(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.First(&tag, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs retrieves the tags with the given IDs, ordered by name
func (r *TagRepository) GetByIDs(tx *gorm.DB, ids []int64) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := tx.Where("id IN ?", ids).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// List retrieves tags with pagination
func (r *TagRepository) List(tx *gorm.DB, limit, offset int) ([]models.Tag, int64, error) {
	var tags []models.Tag
	var total int64

	if err := tx.Model(&models.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := tx.Model(&models.Tag{}).Order("name ASC").Limit(limit).Offset(offset).Find(&tags).Error; err != nil {
		return nil, 0, err
	}

	return tags, total, nil
}

// Update saves every column of the tag
func (r *TagRepository) Update(tx *gorm.DB, tag *models.Tag) error {
	return tx.Save(tag).Error
}

// Delete removes a tag. Links are removed by the caller in the same transaction.
func (r *TagRepository) Delete(tx *gorm.DB, id int64) error {
	return tx.Delete(&models.Tag{}, "id = ?", id).Error
}

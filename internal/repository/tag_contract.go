package repository

import (
	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// TagContractRepository handles the tag/contract join table. The table has
// no foreign keys; pair uniqueness is backed by uq_tag_contract_pair.
type TagContractRepository struct{}

// NewTagContractRepository creates a new tag/contract link repository
func NewTagContractRepository() *TagContractRepository {
	return &TagContractRepository{}
}

// Create inserts a link
func (r *TagContractRepository) Create(tx *gorm.DB, link *models.TagContract) error {
	return tx.Create(link).Error
}

// Exists reports whether the pair is already linked
func (r *TagContractRepository) Exists(tx *gorm.DB, tagID, contractID int64) (bool, error) {
	var count int64
	err := tx.Model(&models.TagContract{}).
		Where("tag_id = ? AND contract_id = ?", tagID, contractID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes one link. Returns false when the pair was not linked.
func (r *TagContractRepository) Delete(tx *gorm.DB, tagID, contractID int64) (bool, error) {
	result := tx.Where("tag_id = ? AND contract_id = ?", tagID, contractID).Delete(&models.TagContract{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByTag removes every link of a tag
func (r *TagContractRepository) DeleteByTag(tx *gorm.DB, tagID int64) (int64, error) {
	result := tx.Where("tag_id = ?", tagID).Delete(&models.TagContract{})
	return result.RowsAffected, result.Error
}

// DeleteByContract removes every link of a contract
func (r *TagContractRepository) DeleteByContract(tx *gorm.DB, contractID int64) (int64, error) {
	result := tx.Where("contract_id = ?", contractID).Delete(&models.TagContract{})
	return result.RowsAffected, result.Error
}

// TagIDsByContract maps each of the given contracts to its linked tag IDs
func (r *TagContractRepository) TagIDsByContract(tx *gorm.DB, contractIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(contractIDs))
	if len(contractIDs) == 0 {
		return result, nil
	}

	var links []models.TagContract
	if err := tx.Where("contract_id IN ?", contractIDs).Order("tag_id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	for _, link := range links {
		result[link.ContractID] = append(result[link.ContractID], link.TagID)
	}
	return result, nil
}

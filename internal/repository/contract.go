package repository

import (
	"kubera-backend/internal/database/models"

	"gorm.io/gorm"
)

// ContractRepository handles database operations for contracts
type ContractRepository struct{}

// NewContractRepository creates a new contract repository
func NewContractRepository() *ContractRepository {
	return &ContractRepository{}
}

// Create creates a new contract
func (r *ContractRepository) Create(tx *gorm.DB, contract *models.Contract) error {
	return tx.Create(contract).Error
}

// GetByID retrieves a contract by ID
func (r *ContractRepository) GetByID(tx *gorm.DB, id int64) (*models.Contract, error) {
	var contract models.Contract
	err := tx.First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// List retrieves contracts with pagination, newest first
func (r *ContractRepository) List(tx *gorm.DB, limit, offset int) ([]models.Contract, int64, error) {
	var contracts []models.Contract
	var total int64

	if err := tx.Model(&models.Contract{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := tx.Model(&models.Contract{}).Order("id DESC").Limit(limit).Offset(offset).Find(&contracts).Error; err != nil {
		return nil, 0, err
	}

	return contracts, total, nil
}

// Update saves every column of the contract
func (r *ContractRepository) Update(tx *gorm.DB, contract *models.Contract) error {
	return tx.Save(contract).Error
}

// Delete removes a contract. Links are removed by the caller in the same transaction.
func (r *ContractRepository) Delete(tx *gorm.DB, id int64) error {
	return tx.Delete(&models.Contract{}, "id = ?", id).Error
}

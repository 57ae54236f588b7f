package models

import (
	"time"
)

// Contract is a vendor contract owned by a tenant.
type Contract struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title             string     `json:"title" gorm:"size:255;not null"`
	ServiceProviderID int64      `json:"service_provider_id" gorm:"not null"`
	ReferenceNumber   *string    `json:"reference_number,omitempty" gorm:"size:100;uniqueIndex:uq_contract_reference_number"`
	Description       *string    `json:"description,omitempty" gorm:"type:text"`
	StartDate         time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate           *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	TotalValue        *float64   `json:"total_value,omitempty" gorm:"type:numeric(18,2)"`
	InternalOwner     *string    `json:"internal_owner,omitempty" gorm:"size:255"`
	RenewalAlertFlag  bool       `json:"renewal_alert_flag" gorm:"not null"`
	Notes             *string    `json:"notes,omitempty" gorm:"type:text"`
	AuditedModel
}

// TableName returns the table name for Contract
func (Contract) TableName() string {
	return "contract"
}

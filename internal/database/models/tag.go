package models

// Tag labels contracts inside a tenant.
type Tag struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:255;not null;uniqueIndex:uq_tag_name"`
	Description *string `json:"description,omitempty" gorm:"type:text"`
	AuditedModel
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tag"
}

// TagContract links a tag to a contract. There are no foreign keys: integrity
// (pair uniqueness and cascade on delete) is enforced by the application.
type TagContract struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TagID      int64 `json:"tag_id" gorm:"not null;uniqueIndex:uq_tag_contract_pair,priority:1;index"`
	ContractID int64 `json:"contract_id" gorm:"not null;uniqueIndex:uq_tag_contract_pair,priority:2;index"`
	AuditedModel
}

// TableName returns the table name for TagContract
func (TagContract) TableName() string {
	return "tag_contract"
}

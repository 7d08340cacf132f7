package datamodel

import "time"

// SoftDeleteModel is the lifecycle base shared by categories, transactions and
// monthly budgets. Deletion is always logical: the row stays in place, flagged
// inactive and stamped with the deletion time. Queries over "live" data must
// filter on is_active.
type SoftDeleteModel struct {
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at"`
	IsActive  bool       `json:"is_active" gorm:"column:is_active;default:true"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"column:deleted_at"`
}

// MarkDeleted flips the active flag off and stamps the deletion time.
func (m *SoftDeleteModel) MarkDeleted() {
	now := time.Now()
	m.IsActive = false
	m.DeletedAt = &now
	m.UpdatedAt = now
}

// Touch refreshes the update timestamp.
func (m *SoftDeleteModel) Touch() {
	m.UpdatedAt = time.Now()
}

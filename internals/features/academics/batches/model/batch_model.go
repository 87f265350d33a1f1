package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchStatus string

const (
	BatchStatusActive   BatchStatus = "Active"
	BatchStatusInactive BatchStatus = "Inactive"
)

/* =========================================================
   MODEL — batches (soft-deletable, trash + restore)
   ========================================================= */

type BatchModel struct {
	BatchID uuid.UUID `gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_id"`

	BatchName     string  `gorm:"column:batch_name;type:varchar(100);not null" json:"batch_name"`
	BatchCategory *string `gorm:"column:batch_category;type:varchar(100)" json:"batch_category,omitempty"`

	BatchStartDate *time.Time `gorm:"column:batch_start_date" json:"batch_start_date,omitempty"`
	BatchEndDate   *time.Time `gorm:"column:batch_end_date" json:"batch_end_date,omitempty"`

	BatchStatus    BatchStatus `gorm:"column:batch_status;type:varchar(20);not null;default:'Active';index" json:"batch_status"`
	BatchIsDeleted bool        `gorm:"column:batch_is_deleted;not null;default:false;index" json:"batch_is_deleted"`

	BatchCreatedAt time.Time `gorm:"column:batch_created_at;not null;default:now();index" json:"batch_created_at"`
	BatchUpdatedAt time.Time `gorm:"column:batch_updated_at;not null;default:now()" json:"batch_updated_at"`
}

func (BatchModel) TableName() string { return "batches" }

func (m *BatchModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BatchCreatedAt.IsZero() {
		m.BatchCreatedAt = now
	}
	m.BatchUpdatedAt = now
	return nil
}

func (m *BatchModel) BeforeUpdate(tx *gorm.DB) error {
	m.BatchUpdatedAt = time.Now()
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillModel struct {
	SkillID uuid.UUID `gorm:"column:skill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"skill_id"`

	SkillName string `gorm:"column:skill_name;type:varchar(100);not null;uniqueIndex:uniq_skill_name" json:"skill_name"`

	// Frontend | Backend | Database | DevOps | Tools | Other
	SkillCategory string `gorm:"column:skill_category;type:varchar(30);not null" json:"skill_category"`

	SkillStatus    string `gorm:"column:skill_status;type:varchar(20);not null;default:'Active'" json:"skill_status"`
	SkillIsDeleted bool   `gorm:"column:skill_is_deleted;not null;default:false;index" json:"skill_is_deleted"`

	SkillCreatedAt time.Time `gorm:"column:skill_created_at;not null;default:now()" json:"skill_created_at"`
	SkillUpdatedAt time.Time `gorm:"column:skill_updated_at;not null;default:now()" json:"skill_updated_at"`
}

func (SkillModel) TableName() string { return "skills" }

func (m *SkillModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SkillCreatedAt.IsZero() {
		m.SkillCreatedAt = now
	}
	m.SkillUpdatedAt = now
	return nil
}

func (m *SkillModel) BeforeUpdate(tx *gorm.DB) error {
	m.SkillUpdatedAt = time.Now()
	return nil
}

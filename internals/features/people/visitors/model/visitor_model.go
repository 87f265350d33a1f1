package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — visitors (soft delete)

   Walk-in / enquiry records. A visitor either converts into a
   student (status Converted, one-way) or is eventually marked
   NotInterested; conversion never deletes the row.
   ========================================================= */

const (
	SourceWalkIn   = "WalkIn"
	SourceCall     = "Call"
	SourceReferral = "Referral"
	SourceOnline   = "Online"

	StatusActive        = "Active"
	StatusFollowUp      = "FollowUp"
	StatusConverted     = "Converted"
	StatusNotInterested = "NotInterested"
)

type VisitorModel struct {
	VisitorID uuid.UUID `gorm:"column:visitor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"visitor_id"`

	VisitorName   string  `gorm:"column:visitor_name;type:varchar(100);not null" json:"visitor_name"`
	VisitorMobile string  `gorm:"column:visitor_mobile;type:varchar(20);not null" json:"visitor_mobile"`
	VisitorEmail  *string `gorm:"column:visitor_email;type:varchar(255)" json:"visitor_email,omitempty"`

	VisitorSource string `gorm:"column:visitor_source;type:varchar(20);not null;default:'WalkIn'" json:"visitor_source"`
	VisitorStatus string `gorm:"column:visitor_status;type:varchar(20);not null;default:'Active';index" json:"visitor_status"`

	VisitorCourseInterestID *uuid.UUID `gorm:"column:visitor_course_interest_id;type:uuid;index" json:"visitor_course_interest_id,omitempty"`

	VisitorNote      *string   `gorm:"column:visitor_note;type:text" json:"visitor_note,omitempty"`
	VisitorVisitDate time.Time `gorm:"column:visitor_visit_date;not null;default:now()" json:"visitor_visit_date"`

	VisitorIsDeleted bool `gorm:"column:visitor_is_deleted;not null;default:false;index" json:"visitor_is_deleted"`

	VisitorCreatedAt time.Time `gorm:"column:visitor_created_at;not null;default:now();index" json:"visitor_created_at"`
	VisitorUpdatedAt time.Time `gorm:"column:visitor_updated_at;not null;default:now()" json:"visitor_updated_at"`
}

func (VisitorModel) TableName() string { return "visitors" }

func (m *VisitorModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.VisitorCreatedAt.IsZero() {
		m.VisitorCreatedAt = now
	}
	if m.VisitorVisitDate.IsZero() {
		m.VisitorVisitDate = now
	}
	m.VisitorUpdatedAt = now
	return nil
}

func (m *VisitorModel) BeforeUpdate(tx *gorm.DB) error {
	m.VisitorUpdatedAt = time.Now()
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL — fees + fee_installments (hard delete)

   One ledger row per student. Totals are stored denormalized
   and recomputed from the installment rows on every mutation;
   money is whole currency units in int64.
   ========================================================= */

type FeeModel struct {
	FeeID uuid.UUID `gorm:"column:fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_id"`

	FeeStudentID uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;uniqueIndex:uniq_fee_student" json:"fee_student_id"`

	FeeTotal   int64 `gorm:"column:fee_total;not null" json:"fee_total"`
	FeePaid    int64 `gorm:"column:fee_paid;not null;default:0" json:"fee_paid"`
	FeePending int64 `gorm:"column:fee_pending;not null" json:"fee_pending"`

	FeeCreatedAt time.Time `gorm:"column:fee_created_at;not null;default:now()" json:"fee_created_at"`
	FeeUpdatedAt time.Time `gorm:"column:fee_updated_at;not null;default:now()" json:"fee_updated_at"`

	Installments []FeeInstallmentModel `gorm:"foreignKey:FeeInstallmentFeeID;references:FeeID" json:"installments,omitempty"`
}

func (FeeModel) TableName() string { return "fees" }

func (m *FeeModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeCreatedAt.IsZero() {
		m.FeeCreatedAt = now
	}
	m.FeeUpdatedAt = now
	return nil
}

func (m *FeeModel) BeforeUpdate(tx *gorm.DB) error {
	m.FeeUpdatedAt = time.Now()
	return nil
}

type FeeInstallmentModel struct {
	FeeInstallmentID uuid.UUID `gorm:"column:fee_installment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_installment_id"`

	FeeInstallmentFeeID uuid.UUID `gorm:"column:fee_installment_fee_id;type:uuid;not null;index" json:"fee_installment_fee_id"`

	FeeInstallmentAmount int64     `gorm:"column:fee_installment_amount;not null" json:"fee_installment_amount"`
	FeeInstallmentDate   time.Time `gorm:"column:fee_installment_date;not null;default:now()" json:"fee_installment_date"`

	// Cash | UPI | Bank
	FeeInstallmentMode string  `gorm:"column:fee_installment_mode;type:varchar(10);not null" json:"fee_installment_mode"`
	FeeInstallmentNote *string `gorm:"column:fee_installment_note;type:text" json:"fee_installment_note,omitempty"`

	FeeInstallmentCreatedAt time.Time `gorm:"column:fee_installment_created_at;not null;default:now()" json:"fee_installment_created_at"`
}

func (FeeInstallmentModel) TableName() string { return "fee_installments" }

func (m *FeeInstallmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeInstallmentCreatedAt.IsZero() {
		m.FeeInstallmentCreatedAt = time.Now()
	}
	if m.FeeInstallmentDate.IsZero() {
		m.FeeInstallmentDate = time.Now()
	}
	return nil
}

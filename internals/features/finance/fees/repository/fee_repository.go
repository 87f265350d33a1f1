package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "coachku_backend/internals/features/finance/fees/model"
	service "coachku_backend/internals/features/finance/fees/service"
)

type gormFeeRepository struct {
	db *gorm.DB
}

var _ service.FeeRepository = (*gormFeeRepository)(nil)

func NewFeeRepository(db *gorm.DB) service.FeeRepository {
	return &gormFeeRepository{db: db}
}

func (r *gormFeeRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) (*model.FeeModel, error) {
	var fee model.FeeModel
	err := r.db.WithContext(ctx).First(&fee, "fee_student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *gormFeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FeeModel, error) {
	var fee model.FeeModel
	err := r.db.WithContext(ctx).First(&fee, "fee_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *gormFeeRepository) Insert(ctx context.Context, fee *model.FeeModel) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *gormFeeRepository) Save(ctx context.Context, fee *model.FeeModel) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

func (r *gormFeeRepository) DeleteWithInstallments(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fee_installment_fee_id = ?", id).
			Delete(&model.FeeInstallmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FeeModel{}, "fee_id = ?", id).Error
	})
}

func (r *gormFeeRepository) InsertInstallment(ctx context.Context, inst *model.FeeInstallmentModel) error {
	return r.db.WithContext(ctx).Create(inst).Error
}

func (r *gormFeeRepository) FindInstallment(ctx context.Context, feeID, instID uuid.UUID) (*model.FeeInstallmentModel, error) {
	var inst model.FeeInstallmentModel
	err := r.db.WithContext(ctx).
		First(&inst, "fee_installment_id = ? AND fee_installment_fee_id = ?", instID, feeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *gormFeeRepository) DeleteInstallment(ctx context.Context, instID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FeeInstallmentModel{}, "fee_installment_id = ?", instID).Error
}

func (r *gormFeeRepository) ListInstallments(ctx context.Context, feeID uuid.UUID) ([]model.FeeInstallmentModel, error) {
	var insts []model.FeeInstallmentModel
	err := r.db.WithContext(ctx).
		Where("fee_installment_fee_id = ?", feeID).
		Order("fee_installment_date ASC").
		Find(&insts).Error
	if err != nil {
		return nil, err
	}
	return insts, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "coachku_backend/internals/features/academics/attendances/model"
	service "coachku_backend/internals/features/academics/attendances/service"
)

type gormAttendanceRepository struct {
	db *gorm.DB
}

var _ service.AttendanceRepository = (*gormAttendanceRepository)(nil)

func NewAttendanceRepository(db *gorm.DB) service.AttendanceRepository {
	return &gormAttendanceRepository{db: db}
}

func (r *gormAttendanceRepository) FindForBatchRange(ctx context.Context, batchID uuid.UUID, start, end time.Time) (*model.AttendanceModel, error) {
	var att model.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("attendance_batch_id = ? AND attendance_date >= ? AND attendance_date < ?", batchID, start, end).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *gormAttendanceRepository) Insert(ctx context.Context, att *model.AttendanceModel) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *gormAttendanceRepository) Save(ctx context.Context, att *model.AttendanceModel) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *gormAttendanceRepository) ListForBatch(ctx context.Context, batchID uuid.UUID) ([]model.AttendanceModel, error) {
	var atts []model.AttendanceModel
	err := r.db.WithContext(ctx).
		Where("attendance_batch_id = ?", batchID).
		Order("attendance_date DESC").
		Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}

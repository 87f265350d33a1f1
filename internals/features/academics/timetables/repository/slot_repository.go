package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "coachku_backend/internals/features/academics/timetables/model"
	service "coachku_backend/internals/features/academics/timetables/service"
)

type gormSlotRepository struct {
	db *gorm.DB
}

var _ service.SlotRepository = (*gormSlotRepository)(nil)

func NewSlotRepository(db *gorm.DB) service.SlotRepository {
	return &gormSlotRepository{db: db}
}

func (r *gormSlotRepository) ListForBatchDay(ctx context.Context, batchID uuid.UUID, day string, excludeID *uuid.UUID) ([]model.TimetableSlotModel, error) {
	q := r.db.WithContext(ctx).
		Where("timetable_slot_batch_id = ? AND timetable_slot_day = ?", batchID, day)
	if excludeID != nil {
		q = q.Where("timetable_slot_id <> ?", *excludeID)
	}
	var slots []model.TimetableSlotModel
	if err := q.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *gormSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TimetableSlotModel, error) {
	var slot model.TimetableSlotModel
	err := r.db.WithContext(ctx).First(&slot, "timetable_slot_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *gormSlotRepository) Insert(ctx context.Context, slot *model.TimetableSlotModel) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *gormSlotRepository) Save(ctx context.Context, slot *model.TimetableSlotModel) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *gormSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TimetableSlotModel{}, "timetable_slot_id = ?", id).Error
}

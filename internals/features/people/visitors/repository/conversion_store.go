package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "coachku_backend/internals/features/academics/courses/model"
	studentModel "coachku_backend/internals/features/people/students/model"
	visitorModel "coachku_backend/internals/features/people/visitors/model"
	service "coachku_backend/internals/features/people/visitors/service"
	userModel "coachku_backend/internals/features/users/model"
	helper "coachku_backend/internals/helpers"
)

type gormConversionStore struct {
	db *gorm.DB
}

var _ service.ConversionStore = (*gormConversionStore)(nil)

func NewConversionStore(db *gorm.DB) service.ConversionStore {
	return &gormConversionStore{db: db}
}

func (s *gormConversionStore) FindVisitor(ctx context.Context, id uuid.UUID) (*visitorModel.VisitorModel, error) {
	var v visitorModel.VisitorModel
	err := s.db.WithContext(ctx).
		First(&v, "visitor_id = ? AND visitor_is_deleted = FALSE", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *gormConversionStore) FindCourse(ctx context.Context, id uuid.UUID) (*courseModel.CourseModel, error) {
	var c courseModel.CourseModel
	err := s.db.WithContext(ctx).
		First(&c, "course_id = ? AND course_is_deleted = FALSE", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *gormConversionStore) CreateUser(ctx context.Context, u *userModel.UserModel) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return helper.MapPGError(err, "An account with this email already exists")
	}
	return nil
}

func (s *gormConversionStore) CreateStudent(ctx context.Context, st *studentModel.StudentModel) error {
	if err := s.db.WithContext(ctx).Create(st).Error; err != nil {
		return helper.MapPGError(err, "A student already exists for this account")
	}
	return nil
}

func (s *gormConversionStore) MarkConverted(ctx context.Context, visitorID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&visitorModel.VisitorModel{}).
		Where("visitor_id = ?", visitorID).
		Update("visitor_status", visitorModel.StatusConverted).Error
}

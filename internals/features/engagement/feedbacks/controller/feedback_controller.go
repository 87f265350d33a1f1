package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mappingModel "coachku_backend/internals/features/academics/batch_mappings/model"
	dto "coachku_backend/internals/features/engagement/feedbacks/dto"
	m "coachku_backend/internals/features/engagement/feedbacks/model"
	studentModel "coachku_backend/internals/features/people/students/model"
	tutorModel "coachku_backend/internals/features/people/tutors/model"
	helper "coachku_backend/internals/helpers"
	authmw "coachku_backend/internals/middlewares/auth"
)

type FeedbackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *FeedbackController {
	return &FeedbackController{DB: db, Validate: v}
}

/* ========================= Submit (student) ========================= */
// POST /feedbacks — upsert on (student, batch); a second submission replaces
// the first.
func (ctl *FeedbackController) Submit(c *fiber.Ctx) error {
	userID, err := authmw.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.
		Where("student_user_id = ? AND student_is_deleted = FALSE", userID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	// batch, course and tutor come from the mapping, not from the request;
	// feedback without a mapping has nothing to attach to
	var link mappingModel.BatchMappingStudentModel
	if err := ctl.DB.
		Where("batch_mapping_student_student_id = ?", student.StudentID).
		First(&link).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "You are not assigned to a batch yet")
	}
	var mapping mappingModel.BatchMappingModel
	if err := ctl.DB.
		Where("batch_mapping_id = ?", link.BatchMappingStudentMappingID).
		First(&mapping).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "You are not assigned to a batch yet")
	}

	var fb m.FeedbackModel
	err = ctl.DB.
		Where("feedback_student_id = ? AND feedback_batch_id = ?", student.StudentID, mapping.BatchMappingBatchID).
		First(&fb).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		fb = m.FeedbackModel{
			FeedbackStudentID: student.StudentID,
			FeedbackBatchID:   mapping.BatchMappingBatchID,
			FeedbackCourseID:  mapping.BatchMappingCourseID,
			FeedbackTutorID:   mapping.BatchMappingTutorID,
			FeedbackRating:    req.Rating,
			FeedbackComment:   req.Comment,
		}
		if err := ctl.DB.Create(&fb).Error; err != nil {
			return helper.JsonAppError(c, helper.MapPGError(err, "Feedback already submitted"))
		}
		return helper.JsonCreated(c, "Feedback submitted", fb)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		fb.FeedbackCourseID = mapping.BatchMappingCourseID
		fb.FeedbackTutorID = mapping.BatchMappingTutorID
		fb.FeedbackRating = req.Rating
		fb.FeedbackComment = req.Comment
		if err := ctl.DB.Save(&fb).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonUpdated(c, "Feedback updated", fb)
	}
}

/* ========================= My (student) ========================= */
// GET /feedbacks/my
func (ctl *FeedbackController) MyStudent(c *fiber.Ctx) error {
	userID, err := authmw.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.
		Where("student_user_id = ? AND student_is_deleted = FALSE", userID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	var fbs []m.FeedbackModel
	if err := ctl.DB.
		Where("feedback_student_id = ?", student.StudentID).
		Order("feedback_updated_at DESC").
		Find(&fbs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", fbs)
}

/* ========================= Received (tutor) ========================= */
// GET /feedbacks/received
func (ctl *FeedbackController) MyTutor(c *fiber.Ctx) error {
	userID, err := authmw.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var tutor tutorModel.TutorModel
	if err := ctl.DB.
		Where("tutor_user_id = ? AND tutor_is_deleted = FALSE", userID).
		First(&tutor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tutor profile not found")
	}

	var fbs []m.FeedbackModel
	if err := ctl.DB.
		Where("feedback_tutor_id = ?", tutor.TutorID).
		Order("feedback_updated_at DESC").
		Find(&fbs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", fbs)
}

/* ========================= ByBatch (admin) ========================= */
// GET /feedbacks/batch/:id
func (ctl *FeedbackController) ByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	var fbs []m.FeedbackModel
	if err := ctl.DB.
		Where("feedback_batch_id = ?", batchID).
		Order("feedback_updated_at DESC").
		Find(&fbs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", fbs)
}

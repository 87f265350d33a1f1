package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "coachku_backend/internals/features/academics/attendances/dto"
	model "coachku_backend/internals/features/academics/attendances/model"
	"coachku_backend/internals/features/academics/attendances/repository"
	"coachku_backend/internals/features/academics/attendances/service"
	mappingModel "coachku_backend/internals/features/academics/batch_mappings/model"
	studentModel "coachku_backend/internals/features/people/students/model"
	helper "coachku_backend/internals/helpers"
	authmw "coachku_backend/internals/middlewares/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Service
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: v,
		Service:  service.NewService(repository.NewAttendanceRepository(db)),
	}
}

/* =========================================================
   ADMIN / TUTOR
   ========================================================= */

// POST /attendances — upsert for (batch, day). Re-marking a day replaces the
// whole list.
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id")
	}
	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch_id")
	}
	date, err := helper.ParseDateYMD(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (want YYYY-MM-DD)")
	}

	entries := make([]model.AttendanceEntry, 0, len(req.Students))
	for _, s := range req.Students {
		entries = append(entries, model.AttendanceEntry{
			StudentID: uuid.MustParse(s.StudentID),
			Status:    s.Status,
		})
	}

	att, err := ctl.Service.Mark(c.UserContext(), courseID, batchID, date, entries)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Attendance saved", att)
}

// GET /attendances?batch=<uuid>&date=YYYY-MM-DD
func (ctl *AttendanceController) GetByDate(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDQuery(c, "batch")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or missing batch")
	}
	date, err := helper.ParseDateYMD(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (want YYYY-MM-DD)")
	}

	att, err := ctl.Service.GetByDate(c.UserContext(), batchID, date)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "OK", att)
}

// GET /attendances/batch/:id — full history for a batch.
func (ctl *AttendanceController) GetByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	atts, err := ctl.Service.GetByBatch(c.UserContext(), batchID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "OK", atts)
}

/* =========================================================
   SELF (student)
   ========================================================= */

// GET /attendances/my — the student's own marks, resolved through their
// batch mapping.
func (ctl *AttendanceController) MyStudent(c *fiber.Ctx) error {
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

	var link mappingModel.BatchMappingStudentModel
	if err := ctl.DB.
		Where("batch_mapping_student_student_id = ?", student.StudentID).
		First(&link).Error; err != nil {
		return helper.JsonOK(c, "OK", []model.AttendanceModel{})
	}
	var mapping mappingModel.BatchMappingModel
	if err := ctl.DB.
		Where("batch_mapping_id = ?", link.BatchMappingStudentMappingID).
		First(&mapping).Error; err != nil {
		return helper.JsonOK(c, "OK", []model.AttendanceModel{})
	}

	atts, err := ctl.Service.StudentHistory(c.UserContext(), mapping.BatchMappingBatchID, student.StudentID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "OK", atts)
}

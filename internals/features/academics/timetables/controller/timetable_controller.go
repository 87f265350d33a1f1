package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	mappingModel "coachku_backend/internals/features/academics/batch_mappings/model"
	dto "coachku_backend/internals/features/academics/timetables/dto"
	model "coachku_backend/internals/features/academics/timetables/model"
	"coachku_backend/internals/features/academics/timetables/repository"
	"coachku_backend/internals/features/academics/timetables/service"
	studentModel "coachku_backend/internals/features/people/students/model"
	tutorModel "coachku_backend/internals/features/people/tutors/model"
	helper "coachku_backend/internals/helpers"
	authmw "coachku_backend/internals/middlewares/auth"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Service
}

func New(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{
		DB:       db,
		Validate: v,
		Service:  service.NewService(repository.NewSlotRepository(db)),
	}
}

/* =========================================================
   ADMIN
   ========================================================= */

// POST /api/a/timetables
// One slot per requested day. A conflict on any day aborts the request but
// keeps the slots already inserted for earlier days.
func (ctl *TimetableController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimetableRequest
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
	tutorID, err := uuid.Parse(req.TutorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid tutor_id")
	}

	days := make([]service.NewWeekSlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		days = append(days, service.NewWeekSlot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}

	created, err := ctl.Service.CreateWeek(c.UserContext(), courseID, batchID, tutorID, days, req.Description)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Timetable created", created)
}

// GET /api/a/timetables?batch=<uuid>
func (ctl *TimetableController) List(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDQuery(c, "batch")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or missing batch")
	}
	slots, err := ctl.slotsByBatch(c, batchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load timetable")
	}
	return helper.JsonOK(c, "OK", slots)
}

// PUT /api/a/timetables/:id
func (ctl *TimetableController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	slot, err := ctl.Service.UpdateSlot(c.UserContext(), id, req.Day, req.StartTime, req.EndTime, req.Description)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Timetable slot updated", slot)
}

// DELETE /api/a/timetables/:id (hard delete)
func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := ctl.Service.DeleteSlot(c.UserContext(), id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Timetable slot deleted", fiber.Map{"timetable_slot_id": id})
}

/* =========================================================
   SELF (tutor / student dashboards)
   ========================================================= */

// GET /api/u/timetables/my — tutor's own weekly schedule.
func (ctl *TimetableController) MyTutor(c *fiber.Ctx) error {
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

	var slots []model.TimetableSlotModel
	if err := ctl.DB.
		Where("timetable_slot_tutor_id = ?", tutor.TutorID).
		Order("timetable_slot_day ASC, timetable_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load timetable")
	}
	return helper.JsonOK(c, "OK", slots)
}

// GET /api/u/timetables/my-batch — student's schedule, resolved through the
// batch mapping the student belongs to.
func (ctl *TimetableController) MyStudent(c *fiber.Ctx) error {
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
		return helper.JsonOK(c, "OK", []model.TimetableSlotModel{})
	}

	var mapping mappingModel.BatchMappingModel
	if err := ctl.DB.
		Where("batch_mapping_id = ?", link.BatchMappingStudentMappingID).
		First(&mapping).Error; err != nil {
		return helper.JsonOK(c, "OK", []model.TimetableSlotModel{})
	}

	slots, err := ctl.slotsByBatch(c, mapping.BatchMappingBatchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load timetable")
	}
	return helper.JsonOK(c, "OK", slots)
}

func (ctl *TimetableController) slotsByBatch(c *fiber.Ctx, batchID uuid.UUID) ([]model.TimetableSlotModel, error) {
	var slots []model.TimetableSlotModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_slot_batch_id = ?", batchID).
		Order("timetable_slot_day ASC, timetable_slot_start_time ASC").
		Find(&slots).Error
	return slots, err
}

package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "coachku_backend/internals/features/academics/courses/dto"
	m "coachku_backend/internals/features/academics/courses/model"
	helper "coachku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	course := req.ToModel()
	if err := ctl.DB.Create(course).Error; err != nil {
		return helper.JsonAppError(c, helper.MapPGError(err, "Course already exists"))
	}
	return helper.JsonCreated(c, "Course created", course)
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	trash := c.Query("trash") == "true"
	q := ctl.DB.Model(&m.CourseModel{}).Where("course_is_deleted = ?", trash)

	if search := c.Query("search"); search != "" {
		q = q.Where("course_name ILIKE ?", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("course_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var courses []m.CourseModel
	if err := q.Order("course_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", courses, helper.BuildMeta(total, p))
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var course m.CourseModel
	if err := ctl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", course)
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var course m.CourseModel
	if err := ctl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	patch := req.ToModel()
	course.CourseName = patch.CourseName
	course.CourseDuration = patch.CourseDuration
	course.CourseFees = patch.CourseFees
	course.CourseSkills = patch.CourseSkills
	course.CourseStatus = patch.CourseStatus

	if err := ctl.DB.Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Course updated", course)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.CourseModel{}).
		Where("course_id = ?", id).
		Update("course_is_deleted", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course moved to trash", nil)
}

func (ctl *CourseController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.CourseModel{}).
		Where("course_id = ?", id).
		Updates(map[string]any{"course_is_deleted": false, "course_status": m.CourseStatusActive})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonOK(c, "Course restored", nil)
}

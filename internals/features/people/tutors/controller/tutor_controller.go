package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "coachku_backend/internals/features/people/tutors/dto"
	m "coachku_backend/internals/features/people/tutors/model"
	helper "coachku_backend/internals/helpers"
)

type TutorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TutorController {
	return &TutorController{DB: db, Validate: v}
}

/* ========================= Create ========================= */
func (ctl *TutorController) Create(c *fiber.Ctx) error {
	var req d.CreateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	tutor, err := req.ToModel()
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	// tutor + course links in one transaction; the conflict check for a
	// duplicate user link rides on the unique index
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tutor).Error; err != nil {
			return helper.MapPGError(err, "Employee already exists for this user")
		}
		for _, cid := range req.CourseUUIDs() {
			link := m.TutorCourseModel{TutorCourseTutorID: tutor.TutorID, TutorCourseCourseID: cid}
			if err := tx.Create(&link).Error; err != nil {
				return helper.MapPGError(err, "Duplicate course link")
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Employee created", tutor)
}

/* ========================= List ========================= */
func (ctl *TutorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	trash := c.Query("trash") == "true"
	q := ctl.DB.Model(&m.TutorModel{}).Where("tutor_is_deleted = ?", trash)

	if search := c.Query("search"); search != "" {
		q = q.Where("tutor_name ILIKE ? OR tutor_mobile ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("tutor_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var tutors []m.TutorModel
	if err := q.Order("tutor_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&tutors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", tutors, helper.BuildMeta(total, p))
}

/* ========================= Update ========================= */
func (ctl *TutorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var tutor m.TutorModel
	if err := ctl.DB.First(&tutor, "tutor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	patch, err := req.ToModel()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	tutor.TutorName = patch.TutorName
	tutor.TutorMobile = patch.TutorMobile
	tutor.TutorEmail = patch.TutorEmail
	tutor.TutorRole = patch.TutorRole
	tutor.TutorJoiningDate = patch.TutorJoiningDate
	tutor.TutorStatus = patch.TutorStatus

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&tutor).Error; err != nil {
			return helper.MapPGError(err, "Employee update conflict")
		}
		// replace course links
		if err := tx.Where("tutor_course_tutor_id = ?", tutor.TutorID).Delete(&m.TutorCourseModel{}).Error; err != nil {
			return err
		}
		for _, cid := range req.CourseUUIDs() {
			link := m.TutorCourseModel{TutorCourseTutorID: tutor.TutorID, TutorCourseCourseID: cid}
			if err := tx.Create(&link).Error; err != nil {
				return helper.MapPGError(err, "Duplicate course link")
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Employee updated", tutor)
}

/* ========================= Delete (soft) ========================= */
func (ctl *TutorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.TutorModel{}).
		Where("tutor_id = ?", id).
		Update("tutor_is_deleted", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}
	return helper.JsonDeleted(c, "Employee moved to trash", nil)
}

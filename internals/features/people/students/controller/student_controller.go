package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachku_backend/internals/configs"
	d "coachku_backend/internals/features/people/students/dto"
	m "coachku_backend/internals/features/people/students/model"
	helper "coachku_backend/internals/helpers"
	authmw "coachku_backend/internals/middlewares/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

/* ========================= List ========================= */
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	trash := c.Query("trash") == "true"
	q := ctl.DB.Model(&m.StudentModel{}).Where("student_is_deleted = ?", trash)

	if search := c.Query("search"); search != "" {
		q = q.Where("student_name ILIKE ? OR student_mobile ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("student_course_id = ?", courseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var students []m.StudentModel
	if err := q.Order("student_created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", students, helper.BuildMeta(total, p))
}

/* ========================= GetByID ========================= */
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var student m.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", student)
}

/* ========================= Me (student dashboard) ========================= */
func (ctl *StudentController) Me(c *fiber.Ctx) error {
	uid, err := authmw.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var student m.StudentModel
	if err := ctl.DB.First(&student, "student_user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", student)
}

/* ========================= Update ========================= */
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var student m.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	student.StudentName = req.Name
	student.StudentEmail = req.Email
	student.StudentMobile = req.Mobile
	student.StudentBatchID = req.BatchUUID()
	if req.Status != nil {
		student.StudentStatus = *req.Status
	}

	// optional photo replacement (multipart)
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		path, perr := helper.SavePhotoWebP(configs.UploadDir, "students", fh)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, perr.Error())
		}
		student.StudentPhoto = path
	}

	if err := ctl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Student updated", student)
}

/* ========================= Delete (soft) / Restore ========================= */
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_is_deleted", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "Student moved to trash", nil)
}

func (ctl *StudentController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.StudentModel{}).
		Where("student_id = ?", id).
		Updates(map[string]any{"student_is_deleted": false, "student_status": "Active"})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student restored", nil)
}

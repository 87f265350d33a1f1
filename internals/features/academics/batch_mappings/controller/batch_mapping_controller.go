package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "coachku_backend/internals/features/academics/batch_mappings/dto"
	m "coachku_backend/internals/features/academics/batch_mappings/model"
	helper "coachku_backend/internals/helpers"
)

type BatchMappingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BatchMappingController {
	return &BatchMappingController{DB: db, Validate: v}
}

/* ========================= Create ========================= */
func (ctl *BatchMappingController) Create(c *fiber.Ctx) error {
	var req d.CreateBatchMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	mapping := m.BatchMappingModel{
		BatchMappingCourseID: uuid.MustParse(req.CourseID),
		BatchMappingBatchID:  uuid.MustParse(req.BatchID),
		BatchMappingTutorID:  uuid.MustParse(req.TutorID),
	}

	// mapping + student links in one transaction; the one-per-(course,batch)
	// rule rides on the unique index
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mapping).Error; err != nil {
			return helper.MapPGError(err, "Mapping already exists for this course and batch")
		}
		for _, sid := range req.StudentIDs {
			link := m.BatchMappingStudentModel{
				BatchMappingStudentMappingID: mapping.BatchMappingID,
				BatchMappingStudentStudentID: uuid.MustParse(sid),
			}
			if err := tx.Create(&link).Error; err != nil {
				return helper.MapPGError(err, "Duplicate student in mapping")
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Batch mapping created", mapping)
}

/* ========================= List ========================= */
func (ctl *BatchMappingController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&m.BatchMappingModel{})
	if batch := c.Query("batch"); batch != "" {
		q = q.Where("batch_mapping_batch_id = ?", batch)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var mappings []m.BatchMappingModel
	if err := q.Preload("Students").
		Order("batch_mapping_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&mappings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", mappings, helper.BuildMeta(total, p))
}

/* ========================= GetByID ========================= */
func (ctl *BatchMappingController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var mapping m.BatchMappingModel
	if err := ctl.DB.Preload("Students").
		First(&mapping, "batch_mapping_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch mapping not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", mapping)
}

/* ========================= Update ========================= */
func (ctl *BatchMappingController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateBatchMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var mapping m.BatchMappingModel
	if err := ctl.DB.First(&mapping, "batch_mapping_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch mapping not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	mapping.BatchMappingTutorID = uuid.MustParse(req.TutorID)

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&mapping).Error; err != nil {
			return helper.MapPGError(err, "Batch mapping update conflict")
		}
		// replace student links
		if err := tx.Where("batch_mapping_student_mapping_id = ?", mapping.BatchMappingID).
			Delete(&m.BatchMappingStudentModel{}).Error; err != nil {
			return err
		}
		for _, sid := range req.StudentIDs {
			link := m.BatchMappingStudentModel{
				BatchMappingStudentMappingID: mapping.BatchMappingID,
				BatchMappingStudentStudentID: uuid.MustParse(sid),
			}
			if err := tx.Create(&link).Error; err != nil {
				return helper.MapPGError(err, "Duplicate student in mapping")
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Batch mapping updated", mapping)
}

/* ========================= Delete (hard) ========================= */
func (ctl *BatchMappingController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_mapping_student_mapping_id = ?", id).
			Delete(&m.BatchMappingStudentModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&m.BatchMappingModel{}, "batch_mapping_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch mapping not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Batch mapping deleted", nil)
}

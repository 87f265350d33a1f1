package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "coachku_backend/internals/features/academics/batches/dto"
	m "coachku_backend/internals/features/academics/batches/model"
	helper "coachku_backend/internals/helpers"
)

type BatchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BatchController {
	return &BatchController{DB: db, Validate: v}
}

var batchSortColumns = map[string]string{
	"created_at": "batch_created_at",
	"name":       "batch_name",
	"status":     "batch_status",
}

/* ========================= Create ========================= */
func (ctl *BatchController) Create(c *fiber.Ctx) error {
	var req d.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	batch, err := req.ToModel()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.Create(batch).Error; err != nil {
		return helper.JsonAppError(c, helper.MapPGError(err, "Batch already exists"))
	}
	return helper.JsonCreated(c, "Batch created", d.FromModel(batch))
}

/* ========================= List (filter + sort + pagination) ========================= */
func (ctl *BatchController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	trash := c.Query("trash") == "true"
	q := ctl.DB.Model(&m.BatchModel{}).Where("batch_is_deleted = ?", trash)

	if search := c.Query("search"); search != "" {
		q = q.Where("batch_name ILIKE ?", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("batch_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(batchSortColumns, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var batches []m.BatchModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&batches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]d.BatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, d.FromModel(&batches[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildMeta(total, p))
}

/* ========================= Update ========================= */
func (ctl *BatchController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var batch m.BatchModel
	if err := ctl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	patch, err := req.ToModel()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	batch.BatchName = patch.BatchName
	batch.BatchCategory = patch.BatchCategory
	batch.BatchStartDate = patch.BatchStartDate
	batch.BatchEndDate = patch.BatchEndDate
	batch.BatchStatus = patch.BatchStatus

	if err := ctl.DB.Save(&batch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Batch updated", d.FromModel(&batch))
}

/* ========================= Delete (soft) / Restore ========================= */
func (ctl *BatchController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.BatchModel{}).
		Where("batch_id = ?", id).
		Update("batch_is_deleted", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}
	return helper.JsonDeleted(c, "Batch moved to trash", nil)
}

func (ctl *BatchController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.BatchModel{}).
		Where("batch_id = ?", id).
		Updates(map[string]any{"batch_is_deleted": false, "batch_status": m.BatchStatusActive})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch not found")
	}
	return helper.JsonOK(c, "Batch restored", nil)
}

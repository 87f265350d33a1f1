package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachku_backend/internals/configs"
	feerepo "coachku_backend/internals/features/finance/fees/repository"
	feesvc "coachku_backend/internals/features/finance/fees/service"
	d "coachku_backend/internals/features/people/visitors/dto"
	m "coachku_backend/internals/features/people/visitors/model"
	"coachku_backend/internals/features/people/visitors/repository"
	"coachku_backend/internals/features/people/visitors/service"
	helper "coachku_backend/internals/helpers"
	"coachku_backend/internals/services/mailer"
)

type VisitorController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Converter *service.Converter
}

func New(db *gorm.DB, v *validator.Validate) *VisitorController {
	var mail mailer.Mailer
	if configs.SendgridAPIKey != "" {
		mail = mailer.NewSendgrid(configs.SendgridAPIKey, configs.MailFromName, configs.MailFromEmail, "CoachKu")
	} else {
		mail = mailer.NewConsole()
	}
	return &VisitorController{
		DB:       db,
		Validate: v,
		Converter: service.NewConverter(
			repository.NewConversionStore(db),
			feesvc.NewService(feerepo.NewFeeRepository(db)),
			mail,
		),
	}
}

var visitorSortColumns = map[string]string{
	"created_at": "visitor_created_at",
	"name":       "visitor_name",
	"status":     "visitor_status",
	"visit_date": "visitor_visit_date",
}

/* ========================= Create ========================= */
func (ctl *VisitorController) Create(c *fiber.Ctx) error {
	var req d.CreateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	visitor, err := req.ToModel()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.Create(visitor).Error; err != nil {
		return helper.JsonAppError(c, helper.MapPGError(err, "Visitor conflict"))
	}
	return helper.JsonCreated(c, "Visitor created", visitor)
}

/* ========================= List ========================= */
func (ctl *VisitorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	trash := c.Query("trash") == "true"
	q := ctl.DB.Model(&m.VisitorModel{}).Where("visitor_is_deleted = ?", trash)

	if search := c.Query("search"); search != "" {
		q = q.Where("visitor_name ILIKE ? OR visitor_mobile ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("visitor_status = ?", status)
	}
	if source := c.Query("source"); source != "" {
		q = q.Where("visitor_source = ?", source)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(visitorSortColumns, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var visitors []m.VisitorModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&visitors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", visitors, helper.BuildMeta(total, p))
}

/* ========================= GetByID ========================= */
func (ctl *VisitorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var visitor m.VisitorModel
	if err := ctl.DB.First(&visitor, "visitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", visitor)
}

/* ========================= Update ========================= */
func (ctl *VisitorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var visitor m.VisitorModel
	if err := ctl.DB.First(&visitor, "visitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := req.Apply(&visitor); err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.DB.Save(&visitor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Visitor updated", visitor)
}

/* ========================= Delete (soft) / Restore ========================= */
func (ctl *VisitorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.VisitorModel{}).
		Where("visitor_id = ?", id).
		Update("visitor_is_deleted", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
	}
	return helper.JsonDeleted(c, "Visitor moved to trash", nil)
}

func (ctl *VisitorController) Restore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	// restore puts the lead back into the active pipeline
	res := ctl.DB.Model(&m.VisitorModel{}).
		Where("visitor_id = ?", id).
		Updates(map[string]any{"visitor_is_deleted": false, "visitor_status": m.StatusActive})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
	}
	return helper.JsonOK(c, "Visitor restored", nil)
}

/* ========================= Convert ========================= */
// POST /visitors/:id/convert — multipart form: course_id, admission_amount,
// payment_mode, optional batch_id, optional admission_date, required photo.
func (ctl *VisitorController) Convert(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.ConvertVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student photo is required")
	}
	photoPath, err := helper.SavePhotoWebP(configs.UploadDir, "students", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	in := service.ConvertInput{
		VisitorID:       id,
		CourseID:        uuid.MustParse(req.CourseID),
		PhotoPath:       photoPath,
		AdmissionAmount: req.AdmissionAmount,
		PaymentMode:     req.PaymentMode,
	}
	if req.BatchID != nil && *req.BatchID != "" {
		bid, err := uuid.Parse(*req.BatchID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch_id")
		}
		in.BatchID = &bid
	}
	if req.AdmissionDate != nil && *req.AdmissionDate != "" {
		date, err := helper.ParseDateYMD(*req.AdmissionDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admission_date (want YYYY-MM-DD)")
		}
		in.AdmissionDate = date
	} else {
		in.AdmissionDate = time.Now()
	}

	result, err := ctl.Converter.Convert(c.UserContext(), in)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Visitor converted to student", result)
}

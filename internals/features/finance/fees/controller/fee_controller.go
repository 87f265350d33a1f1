package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "coachku_backend/internals/features/finance/fees/dto"
	model "coachku_backend/internals/features/finance/fees/model"
	"coachku_backend/internals/features/finance/fees/repository"
	"coachku_backend/internals/features/finance/fees/service"
	studentModel "coachku_backend/internals/features/people/students/model"
	helper "coachku_backend/internals/helpers"
	authmw "coachku_backend/internals/middlewares/auth"
)

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Service
}

func New(db *gorm.DB, v *validator.Validate) *FeeController {
	return &FeeController{
		DB:       db,
		Validate: v,
		Service:  service.NewService(repository.NewFeeRepository(db)),
	}
}

// feeListRow joins the ledger with the student it belongs to, for the admin
// collections screen.
type feeListRow struct {
	model.FeeModel
	StudentName   string `gorm:"column:student_name" json:"student_name"`
	StudentMobile string `gorm:"column:student_mobile" json:"student_mobile"`
}

/* ========================= Create ========================= */
func (ctl *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	fee, err := ctl.Service.CreateLedger(c.UserContext(), uuid.MustParse(req.StudentID), req.Total)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Fee ledger created", fee)
}

/* ========================= List ========================= */
// GET /fees?search=&status=pending|cleared
func (ctl *FeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.Table("fees").
		Select("fees.*, students.student_name, students.student_mobile").
		Joins("JOIN students ON students.student_id = fees.fee_student_id")

	if search := c.Query("search"); search != "" {
		q = q.Where("students.student_name ILIKE ? OR students.student_mobile ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	switch c.Query("status") {
	case "pending":
		q = q.Where("fees.fee_pending > 0")
	case "cleared":
		q = q.Where("fees.fee_pending = 0")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []feeListRow
	if err := q.Order("fees.fee_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", rows, helper.BuildMeta(total, p))
}

/* ========================= GetByStudent ========================= */
// GET /fees/student/:id — ledger + payment history.
func (ctl *FeeController) GetByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	fee, insts, err := ctl.Service.LedgerForStudent(c.UserContext(), studentID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	fee.Installments = insts
	return helper.JsonOK(c, "OK", fee)
}

/* ========================= AddInstallment ========================= */
// POST /fees/:id/installments
func (ctl *FeeController) AddInstallment(c *fiber.Ctx) error {
	feeID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.AddInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	date := time.Now()
	if req.Date != "" {
		d, err := helper.ParseDateYMD(req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (want YYYY-MM-DD)")
		}
		date = d
	}

	fee, inst, err := ctl.Service.AddInstallment(c.UserContext(), feeID, req.Amount, date, req.Mode, req.Note)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Installment recorded", fiber.Map{
		"fee":         fee,
		"installment": inst,
	})
}

/* ========================= RemoveInstallment ========================= */
// DELETE /fees/:id/installments/:instId
func (ctl *FeeController) RemoveInstallment(c *fiber.Ctx) error {
	feeID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	instID, err := helper.ParseUUIDParam(c, "instId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid installment id")
	}

	fee, err := ctl.Service.RemoveInstallment(c.UserContext(), feeID, instID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Installment removed", fee)
}

/* ========================= UpdateTotal ========================= */
// PUT /fees/:id
func (ctl *FeeController) UpdateTotal(c *fiber.Ctx) error {
	feeID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateFeeTotalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	fee, err := ctl.Service.UpdateTotal(c.UserContext(), feeID, req.Total)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Fee ledger updated", fee)
}

/* ========================= Delete ========================= */
// DELETE /fees/:id (hard delete, installments included)
func (ctl *FeeController) Delete(c *fiber.Ctx) error {
	feeID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := ctl.Service.DeleteLedger(c.UserContext(), feeID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Fee ledger deleted", nil)
}

/* ========================= My ========================= */
// GET /fees/my — the student's own ledger.
func (ctl *FeeController) My(c *fiber.Ctx) error {
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

	fee, insts, err := ctl.Service.LedgerForStudent(c.UserContext(), student.StudentID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	fee.Installments = insts
	return helper.JsonOK(c, "OK", fee)
}

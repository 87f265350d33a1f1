package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "coachku_backend/internals/features/academics/skills/dto"
	m "coachku_backend/internals/features/academics/skills/model"
	helper "coachku_backend/internals/helpers"
)

type SkillController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SkillController {
	return &SkillController{DB: db, Validate: v}
}

func (ctl *SkillController) Create(c *fiber.Ctx) error {
	var req d.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	skill := req.ToModel()
	if err := ctl.DB.Create(skill).Error; err != nil {
		return helper.JsonAppError(c, helper.MapPGError(err, "Skill name already exists"))
	}
	return helper.JsonCreated(c, "Skill created", skill)
}

func (ctl *SkillController) List(c *fiber.Ctx) error {
	trash := c.Query("trash") == "true"
	q := ctl.DB.Model(&m.SkillModel{}).Where("skill_is_deleted = ?", trash)

	if search := c.Query("search"); search != "" {
		q = q.Where("skill_name ILIKE ?", "%"+search+"%")
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("skill_category = ?", category)
	}

	var skills []m.SkillModel
	if err := q.Order("skill_name ASC").Find(&skills).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", skills)
}

func (ctl *SkillController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var skill m.SkillModel
	if err := ctl.DB.First(&skill, "skill_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Skill not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	patch := req.ToModel()
	skill.SkillName = patch.SkillName
	skill.SkillCategory = patch.SkillCategory
	skill.SkillStatus = patch.SkillStatus

	if err := ctl.DB.Save(&skill).Error; err != nil {
		return helper.JsonAppError(c, helper.MapPGError(err, "Skill name already exists"))
	}
	return helper.JsonUpdated(c, "Skill updated", skill)
}

func (ctl *SkillController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.Model(&m.SkillModel{}).
		Where("skill_id = ?", id).
		Update("skill_is_deleted", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Skill not found")
	}
	return helper.JsonDeleted(c, "Skill moved to trash", nil)
}

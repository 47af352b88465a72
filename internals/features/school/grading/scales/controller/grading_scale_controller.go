// file: internals/features/school/grading/scales/controller/grading_scale_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scaleDTO "sekolahku_backend/internals/features/school/grading/scales/dto"
	scaleService "sekolahku_backend/internals/features/school/grading/scales/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradingScaleController struct {
	DB       *gorm.DB
	Registry *scaleService.ScaleRegistry
}

func NewGradingScaleController(db *gorm.DB) *GradingScaleController {
	return &GradingScaleController{DB: db, Registry: scaleService.NewScaleRegistry(db)}
}

// CREATE
// POST /api/a/grading-scales
func (h *GradingScaleController) CreateScale(c *fiber.Ctx) error {
	var req scaleDTO.CreateGradingScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	scale, defs := req.ToModels()
	created, err := h.Registry.Create(scale, defs)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Grading scale created", scaleDTO.FromGradingScaleModel(*created))
}

// LIST
// GET /api/u/grading-scales?academic_year=
func (h *GradingScaleController) ListScales(c *fiber.Ctx) error {
	scales, err := h.Registry.List(c.Query("academic_year"))
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Grading scales", scaleDTO.FromGradingScaleModels(scales), nil)
}

// GET BY ID
// GET /api/u/grading-scales/:id
func (h *GradingScaleController) GetScale(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	scale, err := h.Registry.GetByID(id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Grading scale detail", scaleDTO.FromGradingScaleModel(*scale))
}

// DEFAULT FOR YEAR
// GET /api/u/grading-scales/default?academic_year=2026/2027
func (h *GradingScaleController) GetDefaultScale(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Query("academic_year"))
	if year == "" {
		return fiber.NewError(fiber.StatusBadRequest, "academic_year is required")
	}
	scale, err := h.Registry.DefaultForYear(year)
	if err != nil {
		return err
	}
	if scale == nil {
		return fiber.NewError(fiber.StatusNotFound, "No default grading scale for this academic year")
	}
	return helper.JsonOK(c, "Default grading scale", scaleDTO.FromGradingScaleModel(*scale))
}

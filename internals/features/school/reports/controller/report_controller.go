// file: internals/features/school/reports/controller/report_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	permService "sekolahku_backend/internals/features/school/grading/permissions/service"
	resultService "sekolahku_backend/internals/features/school/grading/results/service"
	reportService "sekolahku_backend/internals/features/school/reports/service"
	helper "sekolahku_backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Builder *reportService.ReportBuilder
}

func NewReportController(db *gorm.DB) *ReportController {
	assembler := resultService.NewDataAssembler(db, permService.NewPermissionEvaluator(db))
	return &ReportController{DB: db, Builder: reportService.NewReportBuilder(db, assembler)}
}

func rendererFor(c *fiber.Ctx) reportService.DocumentRenderer {
	if strings.EqualFold(c.Query("format"), "json") {
		return reportService.JSONRenderer{}
	}
	return reportService.HTMLRenderer{}
}

// GET /api/u/reports/students/:id?calendar_entry_id=
func (h *ReportController) StudentReport(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	calendarEntryID, err := uuid.Parse(strings.TrimSpace(c.Query("calendar_entry_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar_entry_id")
	}

	card, err := h.Builder.StudentReport(studentID, calendarEntryID)
	if err != nil {
		return err
	}
	if card == nil {
		return fiber.NewError(fiber.StatusNotFound, "No published results for this student and exam")
	}
	return helper.JsonOK(c, "Student report card", card)
}

// GET /api/u/reports/students/:id/download?calendar_entry_id=&format=
func (h *ReportController) DownloadStudentReport(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	calendarEntryID, err := uuid.Parse(strings.TrimSpace(c.Query("calendar_entry_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar_entry_id")
	}

	card, err := h.Builder.StudentReport(studentID, calendarEntryID)
	if err != nil {
		return err
	}
	if card == nil {
		return fiber.NewError(fiber.StatusNotFound, "No published results for this student and exam")
	}

	renderer := rendererFor(c)
	doc, err := renderer.Render(*card)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, renderer.ContentType())
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="report_%s.%s"`, card.RollNo, renderer.Ext()))
	return c.Send(doc)
}

// GET /api/a/reports/classes/:id/download?calendar_entry_id=&format=
func (h *ReportController) DownloadClassReports(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	calendarEntryID, err := uuid.Parse(strings.TrimSpace(c.Query("calendar_entry_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar_entry_id")
	}

	cards, err := h.Builder.ClassReports(classID, calendarEntryID)
	if err != nil {
		return err
	}
	archive, err := reportService.PackBatch(cards, rendererFor(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="class_reports_%s.zip"`, classID))
	return c.Send(archive)
}

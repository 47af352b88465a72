// file: internals/features/school/grading/results/controller/grading_view_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	permService "sekolahku_backend/internals/features/school/grading/permissions/service"
	resultService "sekolahku_backend/internals/features/school/grading/results/service"
	helper "sekolahku_backend/internals/helpers"
)

// GradingViewController serves the read-only grading views. Everything here
// is assembled from stored results; no endpoint mutates anything.
type GradingViewController struct {
	DB        *gorm.DB
	Assembler *resultService.DataAssembler
}

func NewGradingViewController(db *gorm.DB) *GradingViewController {
	return &GradingViewController{
		DB:        db,
		Assembler: resultService.NewDataAssembler(db, permService.NewPermissionEvaluator(db)),
	}
}

// GET /api/u/grading/grid?class_id=&calendar_entry_id= (or exam_schedule_id=
// to narrow down to one schedule)
func (h *GradingViewController) ClassGrid(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class_id")
	}

	if raw := strings.TrimSpace(c.Query("exam_schedule_id")); raw != "" {
		scheduleID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid exam_schedule_id")
		}
		grid, err := h.Assembler.ClassGrid(scheduleID, classID, actor)
		if err != nil {
			return err
		}
		return helper.JsonOK(c, "Class grading grid", grid)
	}

	entryID, err := uuid.Parse(strings.TrimSpace(c.Query("calendar_entry_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Provide exam_schedule_id or calendar_entry_id")
	}
	grid, err := h.Assembler.EntryClassGrid(entryID, classID, actor)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Class grading grid", grid)
}

// GET /api/u/grading/subjects/:id/grid?calendar_entry_id=&class_ids=a,b
func (h *GradingViewController) SubjectOverview(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	entryID, err := uuid.Parse(strings.TrimSpace(c.Query("calendar_entry_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar_entry_id")
	}
	var classIDs []uuid.UUID
	if raw := strings.TrimSpace(c.Query("class_ids")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid class_ids")
			}
			classIDs = append(classIDs, id)
		}
	}

	overview, err := h.Assembler.SubjectEntryGrid(subjectID, entryID, classIDs, actor)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Subject grading overview", overview)
}

// GET /api/u/grading/grid/slot?exam_slot_id=&class_id=
func (h *GradingViewController) SubjectGrid(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}
	slotID, err := uuid.Parse(strings.TrimSpace(c.Query("exam_slot_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam_slot_id")
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class_id")
	}

	grid, err := h.Assembler.SubjectGrid(slotID, classID, actor)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Subject grading grid", grid)
}

// GET /api/u/grading/students/:id/history?academic_year=&class_id=&subject_id=&exam_type=
func (h *GradingViewController) StudentHistory(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	filter := resultService.StudentHistoryFilter{
		AcademicYear: strings.TrimSpace(c.Query("academic_year")),
	}
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid class_id")
		}
		filter.ClassID = &classID
	}
	if raw := strings.TrimSpace(c.Query("subject_id")); raw != "" {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject_id")
		}
		filter.SubjectID = &subjectID
	}
	if raw := strings.TrimSpace(c.Query("exam_type")); raw != "" {
		filter.ExamType = &raw
	}
	if c.QueryBool("published_only") {
		filter.PublishedOnly = true
	}

	items, err := h.Assembler.StudentHistory(studentID, filter)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Student grading history", items, nil)
}

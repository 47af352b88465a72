// file: internals/features/school/grading/results/controller/exam_result_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "sekolahku_backend/internals/features/school/audit/service"
	permService "sekolahku_backend/internals/features/school/grading/permissions/service"
	resultDTO "sekolahku_backend/internals/features/school/grading/results/dto"
	resultService "sekolahku_backend/internals/features/school/grading/results/service"
	scaleService "sekolahku_backend/internals/features/school/grading/scales/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ExamResultController struct {
	DB           *gorm.DB
	Store        *resultService.ResultStore
	Orchestrator *resultService.BulkOrchestrator
	Publisher    *resultService.ResultPublisher
	Audit        auditService.Sink
}

func NewExamResultController(db *gorm.DB, audit auditService.Sink) *ExamResultController {
	store := resultService.NewResultStore(db,
		permService.NewPermissionEvaluator(db),
		scaleService.NewScaleRegistry(db))
	return &ExamResultController{
		DB:           db,
		Store:        store,
		Orchestrator: resultService.NewBulkOrchestrator(store, resultService.NewSlotResolver(db)),
		Publisher:    resultService.NewResultPublisher(db, audit),
		Audit:        audit,
	}
}

func requestActor(c *fiber.Ctx) (resultService.Actor, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return resultService.Actor{}, err
	}
	return resultService.Actor{UserID: userID, Role: helperAuth.GetRoleFromToken(c)}, nil
}

// CREATE
// POST /api/u/exam-results
func (h *ExamResultController) CreateResult(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	var req resultDTO.CreateExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	created, err := h.Store.Create(req.ToInput(), actor)
	if err != nil {
		return err
	}

	userID := actor.UserID
	h.Audit.Record(auditService.RecordInput{
		Action: "CREATE_RESULT",
		Module: "grading",
		UserID: &userID,
		Details: fiber.Map{
			"exam_result_id": created.ExamResultID,
			"exam_slot_id":   created.ExamResultExamSlotID,
			"student_id":     created.ExamResultStudentID,
		},
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})

	return helper.JsonCreated(c, "Exam result recorded", resultDTO.FromExamResultModel(created))
}

// UPDATE
// PUT /api/u/exam-results/:id
func (h *ExamResultController) UpdateResult(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}
	resultID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req resultDTO.UpdateExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updated, err := h.Store.Update(resultID, req.ToInput(), actor)
	if err != nil {
		return err
	}

	userID := actor.UserID
	h.Audit.Record(auditService.RecordInput{
		Action: "UPDATE_RESULT",
		Module: "grading",
		UserID: &userID,
		Details: fiber.Map{
			"exam_result_id": updated.ExamResultID,
			"reason":         req.ModificationReason,
		},
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})

	return helper.JsonUpdated(c, "Exam result updated", resultDTO.FromExamResultModel(updated))
}

// BULK (single slot)
// POST /api/u/exam-results/bulk
func (h *ExamResultController) BulkGrade(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	var req resultDTO.BulkGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := h.Orchestrator.BulkGrade(req.ExamSlotID, req.ClassID, resultDTO.ToBulkEntries(req.Entries), actor)
	if err != nil {
		return err
	}
	h.recordBulk(c, actor, "BULK_GRADE", res)
	return helper.JsonOK(c, "Bulk grading processed", res)
}

// BULK (grid across subjects)
// POST /api/u/exam-results/grid
func (h *ExamResultController) GridGrade(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	var req resultDTO.GridGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := h.Orchestrator.GridGrade(req.ExamScheduleID, req.ClassID, resultDTO.ToBulkEntries(req.Entries), actor)
	if err != nil {
		return err
	}
	h.recordBulk(c, actor, "GRID_GRADE", res)
	return helper.JsonOK(c, "Grid grading processed", res)
}

// PUBLISH
// POST /api/a/exam-results/publish
func (h *ExamResultController) PublishResults(c *fiber.Ctx) error {
	actor, err := requestActor(c)
	if err != nil {
		return err
	}

	var req resultDTO.PublishResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := h.Publisher.Publish(resultService.PublishInput{
		CalendarEntryID: req.CalendarEntryID,
		Remarks:         req.Remarks,
		IPAddress:       c.IP(),
		UserAgent:       c.Get(fiber.HeaderUserAgent),
	}, actor)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Results published", res)
}

func (h *ExamResultController) recordBulk(c *fiber.Ctx, actor resultService.Actor, action string, res *resultService.BulkResult) {
	userID := actor.UserID
	h.Audit.Record(auditService.RecordInput{
		Action: action,
		Module: "grading",
		UserID: &userID,
		Details: fiber.Map{
			"processed_count": res.ProcessedCount,
			"created_count":   res.CreatedCount,
			"updated_count":   res.UpdatedCount,
			"error_count":     len(res.Errors),
		},
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})
}

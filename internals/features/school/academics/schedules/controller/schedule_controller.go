// file: internals/features/school/academics/schedules/controller/schedule_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	helper "sekolahku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

/* =========================================================
   Calendar entries
   ========================================================= */

type createCalendarEntryRequest struct {
	Name         string    `json:"calendar_entry_name" validate:"required,min=1,max=160"`
	AcademicYear string    `json:"calendar_entry_academic_year" validate:"required,min=4,max=20"`
	ExamType     string    `json:"calendar_entry_exam_type" validate:"required,min=2,max=24"`
	StartDate    time.Time `json:"calendar_entry_start_date" validate:"required"`
	EndDate      time.Time `json:"calendar_entry_end_date" validate:"required"`
}

// POST /api/a/calendar-entries
func (h *ScheduleController) CreateCalendarEntry(c *fiber.Ctx) error {
	var req createCalendarEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must not be before start date")
	}

	m := schedModel.CalendarEntryModel{
		CalendarEntryName:         req.Name,
		CalendarEntryAcademicYear: req.AcademicYear,
		CalendarEntryExamType:     req.ExamType,
		CalendarEntryStartDate:    req.StartDate,
		CalendarEntryEndDate:      req.EndDate,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create calendar entry")
	}
	return helper.JsonCreated(c, "Calendar entry created", m)
}

// GET /api/u/calendar-entries?academic_year=&exam_type=
func (h *ScheduleController) ListCalendarEntries(c *fiber.Ctx) error {
	q := h.DB.Model(&schedModel.CalendarEntryModel{}).
		Order("calendar_entry_start_date DESC")
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("calendar_entry_academic_year = ?", year)
	}
	if examType := strings.TrimSpace(c.Query("exam_type")); examType != "" {
		q = q.Where("calendar_entry_exam_type = ?", strings.ToUpper(examType))
	}
	var entries []schedModel.CalendarEntryModel
	if err := q.Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list calendar entries")
	}
	return helper.JsonList(c, "Calendar entries", entries, nil)
}

/* =========================================================
   Exam schedules
   ========================================================= */

type createExamScheduleRequest struct {
	CalendarEntryID uuid.UUID   `json:"exam_schedule_calendar_entry_id" validate:"required"`
	Name            string      `json:"exam_schedule_name" validate:"required,min=1,max=160"`
	ClassIDs        []uuid.UUID `json:"exam_schedule_class_ids"`
}

// POST /api/a/exam-schedules
func (h *ScheduleController) CreateExamSchedule(c *fiber.Ctx) error {
	var req createExamScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var entry schedModel.CalendarEntryModel
	if err := h.DB.First(&entry, "calendar_entry_id = ?", req.CalendarEntryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Calendar entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load calendar entry")
	}

	classIDs := make(pq.StringArray, 0, len(req.ClassIDs))
	for _, id := range req.ClassIDs {
		classIDs = append(classIDs, id.String())
	}
	m := schedModel.ExamScheduleModel{
		ExamScheduleCalendarEntryID: req.CalendarEntryID,
		ExamScheduleName:            req.Name,
		ExamScheduleClassIDs:        classIDs,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam schedule")
	}
	return helper.JsonCreated(c, "Exam schedule created", m)
}

// GET /api/u/exam-schedules?calendar_entry_id=
func (h *ScheduleController) ListExamSchedules(c *fiber.Ctx) error {
	q := h.DB.Model(&schedModel.ExamScheduleModel{}).
		Order("exam_schedule_created_at DESC")
	if raw := strings.TrimSpace(c.Query("calendar_entry_id")); raw != "" {
		entryID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar_entry_id")
		}
		q = q.Where("exam_schedule_calendar_entry_id = ?", entryID)
	}
	var schedules []schedModel.ExamScheduleModel
	if err := q.Find(&schedules).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list exam schedules")
	}
	return helper.JsonList(c, "Exam schedules", schedules, nil)
}

/* =========================================================
   Exam slots
   ========================================================= */

type createExamSlotRequest struct {
	ExamScheduleID uuid.UUID  `json:"exam_slot_exam_schedule_id" validate:"required"`
	SubjectID      uuid.UUID  `json:"exam_slot_subject_id" validate:"required"`
	Date           time.Time  `json:"exam_slot_date" validate:"required"`
	StartTime      *time.Time `json:"exam_slot_start_time"`
	EndTime        *time.Time `json:"exam_slot_end_time"`
}

// POST /api/a/exam-slots
func (h *ScheduleController) CreateExamSlot(c *fiber.Ctx) error {
	var req createExamSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := schedModel.ExamSlotModel{
		ExamSlotExamScheduleID: req.ExamScheduleID,
		ExamSlotSubjectID:      req.SubjectID,
		ExamSlotDate:           req.Date,
		ExamSlotStartTime:      req.StartTime,
		ExamSlotEndTime:        req.EndTime,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Schedule already has a slot for this subject")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam slot")
	}
	return helper.JsonCreated(c, "Exam slot created", m)
}

// GET /api/u/exam-slots?exam_schedule_id=
func (h *ScheduleController) ListExamSlots(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(strings.TrimSpace(c.Query("exam_schedule_id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid exam_schedule_id")
	}
	var slots []schedModel.ExamSlotModel
	if err := h.DB.Where("exam_slot_exam_schedule_id = ?", scheduleID).
		Order("exam_slot_date ASC, exam_slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list exam slots")
	}
	return helper.JsonList(c, "Exam slots", slots, nil)
}

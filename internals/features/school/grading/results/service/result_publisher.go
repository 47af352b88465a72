// file: internals/features/school/grading/results/service/result_publisher.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	auditService "sekolahku_backend/internals/features/school/audit/service"
	resultModel "sekolahku_backend/internals/features/school/grading/results/model"
)

type PublishInput struct {
	CalendarEntryID uuid.UUID
	Remarks         string
	IPAddress       string
	UserAgent       string
}

type PublishResult struct {
	CalendarEntryID uuid.UUID `json:"calendar_entry_id"`
	PublishedCount  int       `json:"published_count"`
	PublishedAt     time.Time `json:"published_at"`
}

// PublishStore flips a calendar entry's draft results to PUBLISHED and
// reports how many rows changed. Rows already published are left alone.
type PublishStore interface {
	PublishDrafts(calendarEntryID uuid.UUID, at time.Time) (int64, error)
}

type gormPublishStore struct {
	db *gorm.DB
}

func (s *gormPublishStore) PublishDrafts(calendarEntryID uuid.UUID, at time.Time) (int64, error) {
	tx := s.db.Model(&resultModel.ExamResultModel{}).
		Where("exam_result_status = ?", resultModel.ExamResultStatusDraft).
		Where(`exam_result_exam_slot_id IN (
			SELECT es.exam_slot_id
			FROM exam_slots es
			JOIN exam_schedules sch ON sch.exam_schedule_id = es.exam_slot_exam_schedule_id
			WHERE sch.exam_schedule_calendar_entry_id = ?
			  AND es.exam_slot_deleted_at IS NULL
			  AND sch.exam_schedule_deleted_at IS NULL
		)`, calendarEntryID).
		Updates(map[string]any{
			"exam_result_status":     resultModel.ExamResultStatusPublished,
			"exam_result_updated_at": at,
		})
	return tx.RowsAffected, tx.Error
}

// ResultPublisher flips every draft result under a calendar entry to
// PUBLISHED. Publishing is admin-only and idempotent: already-published
// results are left alone and a rerun publishes zero rows.
type ResultPublisher struct {
	Store PublishStore
	Audit auditService.Sink
}

func NewResultPublisher(db *gorm.DB, audit auditService.Sink) *ResultPublisher {
	return &ResultPublisher{Store: &gormPublishStore{db: db}, Audit: audit}
}

func (p *ResultPublisher) Publish(in PublishInput, actor Actor) (*PublishResult, error) {
	if !constants.IsAdminTier(actor.Role) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only administrators can publish results")
	}

	now := time.Now()
	published, err := p.Store.PublishDrafts(in.CalendarEntryID, now)
	if err != nil {
		log.Printf("[ResultPublisher] ERROR publish %s: %v", in.CalendarEntryID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Result publishing failure")
	}

	userID := actor.UserID
	p.Audit.Record(auditService.RecordInput{
		Action: "PUBLISH_RESULTS",
		Module: "grading",
		UserID: &userID,
		Details: fiber.Map{
			"calendar_entry_id": in.CalendarEntryID,
			"published_count":   published,
			"remarks":           strings.TrimSpace(in.Remarks),
		},
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	})

	return &PublishResult{
		CalendarEntryID: in.CalendarEntryID,
		PublishedCount:  int(published),
		PublishedAt:     now,
	}, nil
}

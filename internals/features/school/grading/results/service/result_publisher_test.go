// file: internals/features/school/grading/results/service/result_publisher_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	auditService "sekolahku_backend/internals/features/school/audit/service"
)

// memoryPublishStore tracks draft rows per calendar entry and flips only
// those, the same contract the SQL store enforces with its status predicate.
type memoryPublishStore struct {
	drafts map[uuid.UUID]int
	calls  int
}

func (s *memoryPublishStore) PublishDrafts(entryID uuid.UUID, _ time.Time) (int64, error) {
	s.calls++
	n := s.drafts[entryID]
	s.drafts[entryID] = 0
	return int64(n), nil
}

type capturingSink struct {
	events []auditService.RecordInput
}

func (c *capturingSink) Record(in auditService.RecordInput) {
	c.events = append(c.events, in)
}

func TestPublishResults(t *testing.T) {
	entryID := uuid.New()
	admin := Actor{UserID: uuid.New(), Role: constants.RoleAdmin}

	t.Run("second run publishes zero rows", func(t *testing.T) {
		store := &memoryPublishStore{drafts: map[uuid.UUID]int{entryID: 3}}
		p := &ResultPublisher{Store: store, Audit: auditService.NopSink{}}

		first, err := p.Publish(PublishInput{CalendarEntryID: entryID}, admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.PublishedCount != 3 {
			t.Fatalf("first run published %d, want 3", first.PublishedCount)
		}

		second, err := p.Publish(PublishInput{CalendarEntryID: entryID}, admin)
		if err != nil {
			t.Fatalf("rerun should succeed, got: %v", err)
		}
		if second.PublishedCount != 0 {
			t.Errorf("rerun published %d, want 0", second.PublishedCount)
		}
		if store.calls != 2 {
			t.Errorf("store calls = %d, want 2", store.calls)
		}
	})

	t.Run("teacher cannot publish", func(t *testing.T) {
		store := &memoryPublishStore{drafts: map[uuid.UUID]int{entryID: 3}}
		p := &ResultPublisher{Store: store, Audit: auditService.NopSink{}}

		_, err := p.Publish(PublishInput{CalendarEntryID: entryID}, Actor{UserID: uuid.New(), Role: constants.RoleTeacher})
		fe, ok := err.(*fiber.Error)
		if !ok || fe.Code != fiber.StatusForbidden {
			t.Fatalf("got %v, want 403", err)
		}
		if store.calls != 0 {
			t.Errorf("store touched %d times by a denied publish, want 0", store.calls)
		}
	})

	t.Run("publish is audited with the row count", func(t *testing.T) {
		sink := &capturingSink{}
		p := &ResultPublisher{
			Store: &memoryPublishStore{drafts: map[uuid.UUID]int{entryID: 2}},
			Audit: sink,
		}

		if _, err := p.Publish(PublishInput{CalendarEntryID: entryID, Remarks: "term 1 final"}, admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sink.events) != 1 {
			t.Fatalf("audit events = %d, want 1", len(sink.events))
		}
		if sink.events[0].Action != "PUBLISH_RESULTS" {
			t.Errorf("audit action = %q, want PUBLISH_RESULTS", sink.events[0].Action)
		}
	})
}

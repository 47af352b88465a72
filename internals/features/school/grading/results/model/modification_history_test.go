// file: internals/features/school/grading/results/model/modification_history_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func entry(reason string) ModificationHistoryEntry {
	changes := map[string]FieldChange{}
	DiffBool(changes, "is_absent", false, true)
	return ModificationHistoryEntry{
		ModifiedAt: time.Now().UTC().Truncate(time.Second),
		ModifiedBy: uuid.New(),
		Reason:     reason,
		Changes:    changes,
	}
}

func TestHistoryEmptyColumn(t *testing.T) {
	var m ExamResultModel
	h, err := m.History()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h) != 0 {
		t.Fatalf("empty column decoded to %d entries", len(h))
	}
}

func TestAppendModificationPreservesOrder(t *testing.T) {
	var m ExamResultModel
	for _, reason := range []string{"first correction", "second correction", "third correction"} {
		if err := m.AppendModification(entry(reason)); err != nil {
			t.Fatalf("append %q: %v", reason, err)
		}
	}

	h, err := m.History()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(h) != 3 {
		t.Fatalf("entries = %d, want 3", len(h))
	}
	want := []string{"first correction", "second correction", "third correction"}
	for i, reason := range want {
		if h[i].Reason != reason {
			t.Errorf("entry %d reason = %q, want %q", i, h[i].Reason, reason)
		}
	}
}

func TestAppendModificationKeepsEarlierEntries(t *testing.T) {
	var m ExamResultModel
	first := entry("initial fix")
	if err := m.AppendModification(first); err != nil {
		t.Fatalf("append: %v", err)
	}
	snapshot := string(m.ExamResultModificationHistory)

	if err := m.AppendModification(entry("later fix")); err != nil {
		t.Fatalf("append: %v", err)
	}
	h, err := m.History()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h[0].Reason != "initial fix" {
		t.Errorf("earlier entry was rewritten: %q", h[0].Reason)
	}
	if len(string(m.ExamResultModificationHistory)) <= len(snapshot) {
		t.Errorf("trail did not grow after second append")
	}
}

func TestDiffHelpers(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	s := func(v string) *string { return &v }

	t.Run("equal values record nothing", func(t *testing.T) {
		changes := map[string]FieldChange{}
		id := uuid.New()
		if DiffFloatPtr(changes, "marks", f(50), f(50)) {
			t.Errorf("equal floats recorded a change")
		}
		if DiffFloatPtr(changes, "marks", nil, nil) {
			t.Errorf("nil floats recorded a change")
		}
		if DiffStringPtr(changes, "remarks", s("ok"), s("ok")) {
			t.Errorf("equal strings recorded a change")
		}
		if DiffUUIDPtr(changes, "grade", &id, &id) {
			t.Errorf("equal uuids recorded a change")
		}
		if DiffBool(changes, "absent", true, true) {
			t.Errorf("equal bools recorded a change")
		}
		if len(changes) != 0 {
			t.Errorf("changes map not empty: %v", changes)
		}
	})

	t.Run("differing values are recorded with both sides", func(t *testing.T) {
		changes := map[string]FieldChange{}
		if !DiffFloatPtr(changes, "marks", f(40), f(55)) {
			t.Fatalf("changed floats not recorded")
		}
		c := changes["marks"]
		if c.From != 40.0 || c.To != 55.0 {
			t.Errorf("marks change = %+v, want 40 -> 55", c)
		}
	})

	t.Run("nil to value transition is recorded", func(t *testing.T) {
		changes := map[string]FieldChange{}
		if !DiffFloatPtr(changes, "marks", nil, f(70)) {
			t.Fatalf("nil to value not recorded")
		}
		c := changes["marks"]
		if c.From != nil || c.To != 70.0 {
			t.Errorf("marks change = %+v, want nil -> 70", c)
		}
	})
}

// file: internals/features/school/grading/results/model/modification_history.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   Modification history: append-only, ordered, write-once
   entries. There is deliberately no API that replaces the
   list wholesale.
   ========================================================= */

// FieldChange records one field's before/after values.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// ModificationHistoryEntry is one audit record on a result.
type ModificationHistoryEntry struct {
	ModifiedAt time.Time              `json:"modified_at"`
	ModifiedBy uuid.UUID              `json:"modified_by"`
	Reason     string                 `json:"reason"`
	Changes    map[string]FieldChange `json:"changes"`
}

type ModificationHistory []ModificationHistoryEntry

// History decodes the stored trail. An empty column decodes to an empty list.
func (m *ExamResultModel) History() (ModificationHistory, error) {
	if len(m.ExamResultModificationHistory) == 0 {
		return ModificationHistory{}, nil
	}
	var h ModificationHistory
	if err := json.Unmarshal(m.ExamResultModificationHistory, &h); err != nil {
		return nil, err
	}
	return h, nil
}

// AppendModification appends one entry to the trail and re-encodes it.
// Existing entries are never rewritten.
func (m *ExamResultModel) AppendModification(entry ModificationHistoryEntry) error {
	h, err := m.History()
	if err != nil {
		return err
	}
	h = append(h, entry)
	raw, err := json.Marshal(h)
	if err != nil {
		return err
	}
	m.ExamResultModificationHistory = datatypes.JSON(raw)
	return nil
}

/* =========================================================
   Diff helpers
   ========================================================= */

// DiffFloatPtr records a change when the two optional values differ.
func DiffFloatPtr(changes map[string]FieldChange, field string, from, to *float64) bool {
	if floatPtrEqual(from, to) {
		return false
	}
	changes[field] = FieldChange{From: anyFloat(from), To: anyFloat(to)}
	return true
}

func DiffStringPtr(changes map[string]FieldChange, field string, from, to *string) bool {
	if stringPtrEqual(from, to) {
		return false
	}
	changes[field] = FieldChange{From: anyString(from), To: anyString(to)}
	return true
}

func DiffUUIDPtr(changes map[string]FieldChange, field string, from, to *uuid.UUID) bool {
	if uuidPtrEqual(from, to) {
		return false
	}
	changes[field] = FieldChange{From: anyUUID(from), To: anyUUID(to)}
	return true
}

func DiffBool(changes map[string]FieldChange, field string, from, to bool) bool {
	if from == to {
		return false
	}
	changes[field] = FieldChange{From: from, To: to}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func anyFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func anyString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func anyUUID(v *uuid.UUID) any {
	if v == nil {
		return nil
	}
	return v.String()
}

// file: internals/features/school/audit/service/audit_recorder.go
package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "sekolahku_backend/internals/features/school/audit/model"
)

type RecordInput struct {
	Action    string
	Module    string
	UserID    *uuid.UUID
	Details   any
	IPAddress string
	UserAgent string
}

// Sink receives audit events. Mutating services call it fire-and-forget:
// a broken sink never fails the mutation it describes.
type Sink interface {
	Record(in RecordInput)
}

type Recorder struct {
	DB *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder { return &Recorder{DB: db} }

// Record persists the event on a detached goroutine. Failures are logged
// and dropped.
func (r *Recorder) Record(in RecordInput) {
	m := auditModel.AuditLogModel{
		AuditLogUserID: in.UserID,
		AuditLogAction: in.Action,
		AuditLogModule: in.Module,
	}
	if in.Details != nil {
		raw, err := json.Marshal(in.Details)
		if err != nil {
			log.Printf("[AuditRecorder] WARN encode details for %s: %v", in.Action, err)
		} else {
			m.AuditLogDetails = datatypes.JSON(raw)
		}
	}
	if in.IPAddress != "" {
		ip := in.IPAddress
		m.AuditLogIPAddress = &ip
	}
	if in.UserAgent != "" {
		ua := in.UserAgent
		m.AuditLogUserAgent = &ua
	}

	go func() {
		if err := r.DB.Create(&m).Error; err != nil {
			log.Printf("[AuditRecorder] WARN record %s/%s dropped: %v", in.Module, in.Action, err)
		}
	}()
}

// NopSink discards every event. Used in tests.
type NopSink struct{}

func (NopSink) Record(RecordInput) {}

// file: internals/features/school/audit/model/audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogModel struct {
	AuditLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:audit_log_id" json:"audit_log_id"`

	AuditLogUserID *uuid.UUID `gorm:"type:uuid;column:audit_log_user_id;index" json:"audit_log_user_id,omitempty"`
	AuditLogAction string     `gorm:"type:varchar(64);not null;column:audit_log_action;index" json:"audit_log_action"`
	AuditLogModule string     `gorm:"type:varchar(64);not null;column:audit_log_module" json:"audit_log_module"`

	AuditLogDetails datatypes.JSON `gorm:"type:jsonb;column:audit_log_details" json:"audit_log_details,omitempty"`

	AuditLogIPAddress *string `gorm:"type:varchar(64);column:audit_log_ip_address" json:"audit_log_ip_address,omitempty"`
	AuditLogUserAgent *string `gorm:"type:text;column:audit_log_user_agent" json:"audit_log_user_agent,omitempty"`

	AuditLogCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:audit_log_created_at" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }

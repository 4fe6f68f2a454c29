package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskLog is an audit entry written by the logging subsystem; this service
// only reads them back during detailed task fetches.
type TaskLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index" json:"taskId"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

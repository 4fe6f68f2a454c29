package model

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index" json:"taskId"`
	FileName  string    `gorm:"not null" json:"fileName"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

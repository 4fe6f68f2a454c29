package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskUser links a user to a task in some capacity (role is free-form,
// e.g. "owner" or "reviewer"). A user appears at most once per task.
type TaskUser struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_task_user" json:"taskId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_task_user" json:"userId"`
	Role      string    `gorm:"not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Task *Task `gorm:"foreignKey:TaskID" json:"-"`
	User User  `gorm:"foreignKey:UserID" json:"user"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	Urgency     int        `json:"urgency"`
	// Level is the depth in the sub-task tree; a task without a parent sits at 0.
	Level int `gorm:"not null;default:0;check:level >= 0" json:"level"`

	ParentTaskID   *uuid.UUID `gorm:"type:uuid;index" json:"parentTaskId,omitempty"`
	DependencyOfID *uuid.UUID `gorm:"type:uuid;index" json:"dependencyOfId,omitempty"`
	AssignedByID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"assignedById"`

	ParentTask   *Task  `gorm:"foreignKey:ParentTaskID" json:"parentTask,omitempty"`
	SubTasks     []Task `gorm:"foreignKey:ParentTaskID" json:"subTasks,omitempty"`
	DependencyOf *Task  `gorm:"foreignKey:DependencyOfID" json:"dependencyOf,omitempty"`
	// Dependencies are the tasks that depend on this one.
	Dependencies []Task `gorm:"foreignKey:DependencyOfID" json:"dependencies,omitempty"`

	AssignedBy    User       `gorm:"foreignKey:AssignedByID" json:"assignedBy"`
	AssignedUsers []TaskUser `gorm:"foreignKey:TaskID" json:"assignedUsers,omitempty"`
	Vertices      []Vertex   `gorm:"many2many:task_vertices" json:"vertices,omitempty"`

	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
	Logs        []TaskLog    `gorm:"foreignKey:TaskID" json:"logs,omitempty"`
}

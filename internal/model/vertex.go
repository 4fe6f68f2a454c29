package model

import (
	"github.com/google/uuid"
)

// Vertex is an opaque node from the graph subsystem that tasks may reference.
type Vertex struct {
	ID    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Label string    `gorm:"not null" json:"label"`
	Data  string    `json:"data,omitempty"`

	Tasks []Task `gorm:"many2many:task_vertices" json:"-"`
}

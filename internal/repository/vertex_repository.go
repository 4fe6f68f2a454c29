package repository

import (
	"context"
	"errors"

	"taskgraph/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VertexRepository struct {
	db *gorm.DB
}

type VertexRepositoryInterface interface {
	Create(ctx context.Context, vertex *model.Vertex) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vertex, error)
}

var _ VertexRepositoryInterface = (*VertexRepository)(nil)

func NewVertexRepository(db *gorm.DB) *VertexRepository {
	return &VertexRepository{db: db}
}

func (r *VertexRepository) Create(ctx context.Context, vertex *model.Vertex) error {
	return r.db.WithContext(ctx).Create(vertex).Error
}

// GetByID resolves a vertex id to a vertex record
func (r *VertexRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vertex, error) {
	var vertex model.Vertex
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vertex).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVertexNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vertex, nil
}

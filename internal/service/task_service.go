package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskgraph/internal/model"
	"taskgraph/internal/repository"
)

var (
	// ErrDuplicateAssignment is returned when a creation request names the
	// same user twice in assignedUsers
	ErrDuplicateAssignment = errors.New("user assigned to task more than once")

	// ErrEmptyUpdate is returned when a partial update carries no fields
	ErrEmptyUpdate = errors.New("update contains no fields")
)

// AssigneeSpec names a user to attach to a task and the capacity they act in.
// Role is free-form ("owner", "reviewer", ...).
type AssigneeSpec struct {
	ID   uuid.UUID
	Role string
}

type CreateTaskInput struct {
	Title         string
	Description   string
	DueDate       *time.Time
	StartDate     *time.Time
	Urgency       int
	AssignedBy    uuid.UUID
	ParentTaskID  *uuid.UUID
	DependencyOf  *uuid.UUID
	Vertices      []uuid.UUID
	AssignedUsers []AssigneeSpec
}

// UpdateTaskInput carries the scalar fields a partial update may touch.
// Nil means "leave unchanged". Relations cannot be modified through update.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	StartDate   *time.Time
	Urgency     *int
}

// UserTasks holds the two per-user views: Assigned answers "what must this
// user act on" (assignee or creator), Assigns answers "what did this user
// hand out" (creator only). They intentionally overlap for tasks a user both
// created and assigned to themself.
type UserTasks struct {
	Assigned []model.Task `json:"assigned"`
	Assigns  []model.Task `json:"assigns"`
}

// TaskService defines the task graph mutation and query operations.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*model.Task, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	ListForUser(ctx context.Context, userID uuid.UUID) (*UserTasks, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (int64, error)
}

type taskService struct {
	taskRepo   repository.TaskRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	vertexRepo repository.VertexRepositoryInterface
}

func NewTaskService(
	taskRepo repository.TaskRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	vertexRepo repository.VertexRepositoryInterface,
) TaskService {
	return &taskService{
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		vertexRepo: vertexRepo,
	}
}

// Create resolves every reference the request carries before anything is
// persisted, then writes the task and its edges in one atomic create. A
// missing parent, dependency, assigner, vertex or assignee aborts the whole
// operation with no partial task row left behind.
func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		StartDate:   input.StartDate,
		Urgency:     input.Urgency,
	}

	if input.ParentTaskID != nil {
		parent, err := s.taskRepo.GetByID(ctx, *input.ParentTaskID)
		if err != nil {
			return nil, fmt.Errorf("resolve parent task: %w", err)
		}
		task.ParentTaskID = &parent.ID
		task.Level = parent.Level + 1
	}

	if input.DependencyOf != nil {
		dependency, err := s.taskRepo.GetByID(ctx, *input.DependencyOf)
		if err != nil {
			return nil, fmt.Errorf("resolve dependency: %w", err)
		}
		task.DependencyOfID = &dependency.ID
	}

	assigner, err := s.userRepo.GetByID(ctx, input.AssignedBy)
	if err != nil {
		return nil, fmt.Errorf("resolve assigner: %w", err)
	}
	task.AssignedByID = assigner.ID

	for _, vertexID := range input.Vertices {
		vertex, err := s.vertexRepo.GetByID(ctx, vertexID)
		if err != nil {
			return nil, fmt.Errorf("resolve vertex %s: %w", vertexID, err)
		}
		task.Vertices = append(task.Vertices, *vertex)
	}

	seen := make(map[uuid.UUID]struct{}, len(input.AssignedUsers))
	for _, spec := range input.AssignedUsers {
		if _, ok := seen[spec.ID]; ok {
			return nil, fmt.Errorf("assignee %s: %w", spec.ID, ErrDuplicateAssignment)
		}
		seen[spec.ID] = struct{}{}

		assignee, err := s.userRepo.GetByID(ctx, spec.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve assignee %s: %w", spec.ID, err)
		}
		task.AssignedUsers = append(task.AssignedUsers, model.TaskUser{
			UserID: assignee.ID,
			Role:   spec.Role,
			User:   *assignee,
		})
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("persist task: %w", err)
	}

	task.AssignedBy = *assigner
	return task, nil
}

// GetDetails fetches one task with all related edges populated
func (s *taskService) GetDetails(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return s.taskRepo.GetDetailed(ctx, id)
}

// ListAll returns every task in the store
func (s *taskService) ListAll(ctx context.Context) ([]model.Task, error) {
	return s.taskRepo.ListAll(ctx)
}

// ListForUser computes both per-user views in one pass
func (s *taskService) ListForUser(ctx context.Context, userID uuid.UUID) (*UserTasks, error) {
	assigned, err := s.taskRepo.ListAssignedTo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list assigned tasks: %w", err)
	}
	assigns, err := s.taskRepo.ListAssignedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list handed-out tasks: %w", err)
	}
	return &UserTasks{Assigned: assigned, Assigns: assigns}, nil
}

// Update applies a scalar partial update. The target must exist and the
// patch must not be empty; edges are left untouched.
func (s *taskService) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (int64, error) {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return 0, err
	}

	fields := make(map[string]interface{})
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}
	if input.StartDate != nil {
		fields["start_date"] = *input.StartDate
	}
	if input.Urgency != nil {
		fields["urgency"] = *input.Urgency
	}
	if len(fields) == 0 {
		return 0, ErrEmptyUpdate
	}

	return s.taskRepo.UpdateFields(ctx, id, fields)
}

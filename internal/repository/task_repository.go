package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskgraph/internal/model"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	ListAssignedTo(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	ListAssignedBy(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create persists the task together with any new assignment and vertex link
// rows reachable from it. GORM runs the association cascade inside a single
// transaction, so a failure leaves no orphaned task row behind.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID without loading any relations
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetDetailed retrieves a task with every edge eagerly populated: sub-tasks,
// dependencies, comments (with the commenting user), attachments, logs,
// assignments and vertex links
func (r *TaskRepository) GetDetailed(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Preload("SubTasks").
		Preload("Dependencies").
		Preload("Comments").
		Preload("Comments.User").
		Preload("Attachments").
		Preload("Logs").
		Preload("AssignedUsers").
		Preload("AssignedUsers.User").
		Preload("Vertices").
		Preload("AssignedBy").
		First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListAll retrieves every task with comments and assignments populated
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Preload("Comments").
		Preload("AssignedUsers").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// ListAssignedTo retrieves the tasks a user must act on: tasks where the user
// appears as an assignee or as the creator. The OR lives in a single query and
// DISTINCT keeps tasks matching both conditions from showing up twice.
func (r *TaskRepository) ListAssignedTo(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Distinct("tasks.*").
		Joins("LEFT JOIN task_users ON task_users.task_id = tasks.id").
		Where("task_users.user_id = ? OR tasks.assigned_by_id = ?", userID, userID).
		Preload("AssignedUsers").
		Preload("AssignedUsers.User").
		Preload("AssignedBy").
		Preload("SubTasks").
		Preload("Dependencies").
		Preload("Vertices").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// ListAssignedBy retrieves the tasks a user handed out (created)
func (r *TaskRepository) ListAssignedBy(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("assigned_by_id = ?", userID).
		Preload("AssignedUsers").
		Preload("AssignedUsers.User").
		Preload("AssignedBy").
		Preload("SubTasks").
		Preload("Dependencies").
		Preload("Vertices").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// UpdateFields applies a partial update to scalar task attributes. Relations
// are never touched through this path.
func (r *TaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

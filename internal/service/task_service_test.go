package service_test

import (
	"context"
	"testing"
	"time"

	"taskgraph/internal/model"
	"taskgraph/internal/repository"
	"taskgraph/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) GetDetailed(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListAssignedTo(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListAssignedBy(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockVertexRepository struct {
	mock.Mock
}

func (m *MockVertexRepository) Create(ctx context.Context, vertex *model.Vertex) error {
	args := m.Called(ctx, vertex)
	return args.Error(0)
}

func (m *MockVertexRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vertex, error) {
	args := m.Called(ctx, id)
	vertex := args.Get(0)
	if vertex == nil {
		return nil, args.Error(1)
	}
	return vertex.(*model.Vertex), args.Error(1)
}

func setupService() (service.TaskService, *MockTaskRepository, *MockUserRepository, *MockVertexRepository) {
	taskRepo := new(MockTaskRepository)
	userRepo := new(MockUserRepository)
	vertexRepo := new(MockVertexRepository)
	return service.NewTaskService(taskRepo, userRepo, vertexRepo), taskRepo, userRepo, vertexRepo
}

func TestCreate_RootTask(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	assigner := &model.User{ID: uuid.New(), Email: "owner@example.com", Name: "Owner"}
	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "Plan release",
		Urgency:    1,
		AssignedBy: assigner.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Plan release", task.Title)
	assert.Equal(t, 0, task.Level)
	assert.Nil(t, task.ParentTaskID)
	assert.Equal(t, assigner.ID, task.AssignedByID)
	assert.Equal(t, assigner.ID, task.AssignedBy.ID)
	taskRepo.AssertExpectations(t)
}

func TestCreate_SubTaskLevel(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	parent := &model.Task{ID: uuid.New(), Title: "Parent", Level: 2}
	assigner := &model.User{ID: uuid.New()}

	taskRepo.On("GetByID", mock.Anything, parent.ID).Return(parent, nil)
	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:        "Child",
		AssignedBy:   assigner.ID,
		ParentTaskID: &parent.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, parent.Level+1, task.Level)
	assert.Equal(t, parent.ID, *task.ParentTaskID)
}

func TestCreate_ParentNotFound(t *testing.T) {
	svc, taskRepo, _, _ := setupService()

	missing := uuid.New()
	taskRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrTaskNotFound)

	_, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:        "Orphan",
		AssignedBy:   uuid.New(),
		ParentTaskID: &missing,
	})

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DependencySet(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	prerequisite := &model.Task{ID: uuid.New(), Title: "Prerequisite"}
	assigner := &model.User{ID: uuid.New()}

	taskRepo.On("GetByID", mock.Anything, prerequisite.ID).Return(prerequisite, nil)
	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:        "Blocked work",
		AssignedBy:   assigner.ID,
		DependencyOf: &prerequisite.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, prerequisite.ID, *task.DependencyOfID)
}

func TestCreate_AssignerNotFound(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	missing := uuid.New()
	userRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "No owner",
		AssignedBy: missing,
	})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_VertexNotFound(t *testing.T) {
	svc, taskRepo, userRepo, vertexRepo := setupService()

	assigner := &model.User{ID: uuid.New()}
	missing := uuid.New()

	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	vertexRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrVertexNotFound)

	_, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "Linked",
		AssignedBy: assigner.ID,
		Vertices:   []uuid.UUID{missing},
	})

	assert.ErrorIs(t, err, repository.ErrVertexNotFound)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_VerticesResolvedInOrder(t *testing.T) {
	svc, taskRepo, userRepo, vertexRepo := setupService()

	assigner := &model.User{ID: uuid.New()}
	first := &model.Vertex{ID: uuid.New(), Label: "milestone"}
	second := &model.Vertex{ID: uuid.New(), Label: "epic"}

	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	vertexRepo.On("GetByID", mock.Anything, first.ID).Return(first, nil)
	vertexRepo.On("GetByID", mock.Anything, second.ID).Return(second, nil)
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "Linked",
		AssignedBy: assigner.ID,
		Vertices:   []uuid.UUID{first.ID, second.ID},
	})

	assert.NoError(t, err)
	assert.Len(t, task.Vertices, 2)
	assert.Equal(t, first.ID, task.Vertices[0].ID)
	assert.Equal(t, second.ID, task.Vertices[1].ID)
}

func TestCreate_Assignees(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	assigner := &model.User{ID: uuid.New()}
	reviewer := &model.User{ID: uuid.New(), Name: "Reviewer"}

	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	userRepo.On("GetByID", mock.Anything, reviewer.ID).Return(reviewer, nil)
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "Review me",
		AssignedBy: assigner.ID,
		AssignedUsers: []service.AssigneeSpec{
			{ID: reviewer.ID, Role: "reviewer"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, task.AssignedUsers, 1)
	assert.Equal(t, reviewer.ID, task.AssignedUsers[0].UserID)
	assert.Equal(t, "reviewer", task.AssignedUsers[0].Role)
	assert.Equal(t, "Reviewer", task.AssignedUsers[0].User.Name)
}

func TestCreate_DuplicateAssigneeRejected(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	assigner := &model.User{ID: uuid.New()}
	assignee := &model.User{ID: uuid.New()}

	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	userRepo.On("GetByID", mock.Anything, assignee.ID).Return(assignee, nil)

	_, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "Doubly assigned",
		AssignedBy: assigner.ID,
		AssignedUsers: []service.AssigneeSpec{
			{ID: assignee.ID, Role: "owner"},
			{ID: assignee.ID, Role: "reviewer"},
		},
	})

	assert.ErrorIs(t, err, service.ErrDuplicateAssignment)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_AssigneeNotFound(t *testing.T) {
	svc, taskRepo, userRepo, _ := setupService()

	assigner := &model.User{ID: uuid.New()}
	missing := uuid.New()

	userRepo.On("GetByID", mock.Anything, assigner.ID).Return(assigner, nil)
	userRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Create(context.Background(), service.CreateTaskInput{
		Title:      "Ghost assignee",
		AssignedBy: assigner.ID,
		AssignedUsers: []service.AssigneeSpec{
			{ID: missing, Role: "owner"},
		},
	})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListForUser_BothViews(t *testing.T) {
	svc, taskRepo, _, _ := setupService()

	userID := uuid.New()
	created := model.Task{ID: uuid.New(), Title: "Created by user", AssignedByID: userID}
	assigned := model.Task{ID: uuid.New(), Title: "Assigned to user"}

	taskRepo.On("ListAssignedTo", mock.Anything, userID).Return([]model.Task{created, assigned}, nil)
	taskRepo.On("ListAssignedBy", mock.Anything, userID).Return([]model.Task{created}, nil)

	views, err := svc.ListForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, views.Assigned, 2)
	assert.Len(t, views.Assigns, 1)
	assert.Equal(t, created.ID, views.Assigns[0].ID)
}

func TestUpdate_TaskNotFound(t *testing.T) {
	svc, taskRepo, _, _ := setupService()

	missing := uuid.New()
	title := "New title"
	taskRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrTaskNotFound)

	_, err := svc.Update(context.Background(), missing, service.UpdateTaskInput{Title: &title})

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	taskRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	svc, taskRepo, _, _ := setupService()

	task := &model.Task{ID: uuid.New(), Title: "Unchanged"}
	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)

	_, err := svc.Update(context.Background(), task.ID, service.UpdateTaskInput{})

	assert.ErrorIs(t, err, service.ErrEmptyUpdate)
	taskRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_ScalarFieldsOnly(t *testing.T) {
	svc, taskRepo, _, _ := setupService()

	task := &model.Task{ID: uuid.New(), Title: "Old title", Urgency: 1}
	title := "New title"
	urgency := 3

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	taskRepo.On("UpdateFields", mock.Anything, task.ID, map[string]interface{}{
		"title":   title,
		"urgency": urgency,
	}).Return(int64(1), nil)

	affected, err := svc.Update(context.Background(), task.ID, service.UpdateTaskInput{
		Title:   &title,
		Urgency: &urgency,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	taskRepo.AssertExpectations(t)
}

func TestUpdate_DueDatePatch(t *testing.T) {
	svc, taskRepo, _, _ := setupService()

	task := &model.Task{ID: uuid.New(), Title: "Scheduled"}
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil)
	taskRepo.On("UpdateFields", mock.Anything, task.ID, map[string]interface{}{
		"due_date": due,
	}).Return(int64(1), nil)

	affected, err := svc.Update(context.Background(), task.ID, service.UpdateTaskInput{DueDate: &due})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

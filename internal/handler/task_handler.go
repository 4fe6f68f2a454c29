package handler

import (
	"errors"
	"net/http"
	"time"

	"taskgraph/internal/repository"
	"taskgraph/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// TaskAssigneeRequest names a user and the role they take on the task
type TaskAssigneeRequest struct {
	ID   string `json:"id" binding:"required,uuid"`
	Role string `json:"role" binding:"required"`
}

// TaskCreateRequest is the creation payload
type TaskCreateRequest struct {
	Title         string                `json:"title" binding:"required"`
	Description   string                `json:"description"`
	DueDate       *time.Time            `json:"dueDate"`
	StartDate     *time.Time            `json:"startDate"`
	Urgency       int                   `json:"urgency"`
	AssignedBy    string                `json:"assignedBy" binding:"required,uuid"`
	ParentTaskID  *string               `json:"parentTaskId" binding:"omitempty,uuid"`
	DependencyOf  *string               `json:"dependencyOf" binding:"omitempty,uuid"`
	Vertices      []string              `json:"vertices" binding:"omitempty,dive,uuid"`
	AssignedUsers []TaskAssigneeRequest `json:"assignedUsers" binding:"omitempty,dive"`
}

// TaskUpdateRequest is the partial update payload; absent fields stay as-is.
// Only scalar attributes can be changed here — edges are fixed at creation.
type TaskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	StartDate   *time.Time `json:"startDate"`
	Urgency     *int       `json:"urgency"`
}

// Create handles POST /tasks
// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        task body TaskCreateRequest true "Task to create"
// @Success      201 {object} model.Task
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	assignedBy, err := uuid.Parse(req.AssignedBy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignedBy ID format"})
		return
	}

	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		StartDate:   req.StartDate,
		Urgency:     req.Urgency,
		AssignedBy:  assignedBy,
	}

	if req.ParentTaskID != nil {
		parentID, err := uuid.Parse(*req.ParentTaskID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parentTaskId format"})
			return
		}
		input.ParentTaskID = &parentID
	}

	if req.DependencyOf != nil {
		dependencyID, err := uuid.Parse(*req.DependencyOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dependencyOf format"})
			return
		}
		input.DependencyOf = &dependencyID
	}

	for _, raw := range req.Vertices {
		vertexID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vertex ID format"})
			return
		}
		input.Vertices = append(input.Vertices, vertexID)
	}

	for _, assignee := range req.AssignedUsers {
		assigneeID, err := uuid.Parse(assignee.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
			return
		}
		input.AssignedUsers = append(input.AssignedUsers, service.AssigneeSpec{
			ID:   assigneeID,
			Role: assignee.Role,
		})
	}

	task, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound),
			errors.Is(err, repository.ErrUserNotFound),
			errors.Is(err, repository.ErrVertexNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateAssignment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		}
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetByID handles GET /tasks/:id
// @Summary      Get a task with all related edges
// @Tags         Tasks
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} model.Task
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.service.GetDetails(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// List handles GET /tasks. Without userId it returns every task; with userId
// it returns both per-user views: assigned (assignee or creator) and assigns
// (creator only).
// @Summary      List tasks, optionally scoped to a user
// @Tags         Tasks
// @Produce      json
// @Param        userId query string false "User ID"
// @Success      200 {object} service.UserTasks
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	rawUserID := c.Query("userId")
	if rawUserID == "" {
		tasks, err := h.service.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	views, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// Update handles PUT /tasks/:id
// @Summary      Partially update a task's scalar fields
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID"
// @Param        task body TaskUpdateRequest true "Fields to update"
// @Success      200 {object} map[string]int64
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	affected, err := h.service.Update(c.Request.Context(), taskID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		StartDate:   req.StartDate,
		Urgency:     req.Urgency,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, service.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Update contains no fields"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

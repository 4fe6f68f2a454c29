package handler

import (
	"errors"
	"net/http"

	"taskgraph/internal/model"
	"taskgraph/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VertexHandler struct {
	repo repository.VertexRepositoryInterface
}

func NewVertexHandler(repo repository.VertexRepositoryInterface) *VertexHandler {
	return &VertexHandler{repo: repo}
}

// VertexCreateRequest is the vertex creation payload
type VertexCreateRequest struct {
	Label string `json:"label" binding:"required"`
	Data  string `json:"data"`
}

// Create handles POST /vertices
func (h *VertexHandler) Create(c *gin.Context) {
	var req VertexCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	vertex := &model.Vertex{
		Label: req.Label,
		Data:  req.Data,
	}

	if err := h.repo.Create(c.Request.Context(), vertex); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vertex"})
		return
	}

	c.JSON(http.StatusCreated, vertex)
}

// GetByID handles GET /vertices/:id
func (h *VertexHandler) GetByID(c *gin.Context) {
	vertexID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vertex ID format"})
		return
	}

	vertex, err := h.repo.GetByID(c.Request.Context(), vertexID)
	if err != nil {
		if errors.Is(err, repository.ErrVertexNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vertex not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vertex"})
		}
		return
	}

	c.JSON(http.StatusOK, vertex)
}

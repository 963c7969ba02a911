package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stagedai-backend/internal/models"
	"stagedai-backend/internal/staging"
)

type ProjectsHandler struct {
	staging *staging.Service
}

func NewProjectsHandler(stagingService *staging.Service) *ProjectsHandler {
	return &ProjectsHandler{staging: stagingService}
}

func parseProjectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return uuid.Nil, false
	}
	return id, true
}

// GetStatus is the polling endpoint while generation runs.
func (h *ProjectsHandler) GetStatus(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	status, err := h.staging.Status(id)
	if err != nil {
		if errors.Is(err, staging.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get status", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetResult returns the full project including images.
func (h *ProjectsHandler) GetResult(c *gin.Context) {
	id, ok := parseProjectID(c)
	if !ok {
		return
	}

	result, err := h.staging.Result(id)
	if err != nil {
		if errors.Is(err, staging.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get result", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

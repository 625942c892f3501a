package handlers

import (
	"strconv"
	"time"

	appErrors "github.com/PeterJCLaw/sb-vision/internal/api/errors"
	"github.com/PeterJCLaw/sb-vision/internal/api/requests"
	"github.com/PeterJCLaw/sb-vision/internal/constants"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/gin-gonic/gin"

	"github.com/PeterJCLaw/sb-vision/internal/services"
)

type RunHandlerConfig struct {
	Services *services.Services
}
type RunHandler struct {
	services *services.Services
}

func NewRunHandler(config *RunHandlerConfig) *RunHandler {
	return &RunHandler{services: config.Services}
}

// SubmitRun enqueues a new pipeline run.
func (h *RunHandler) SubmitRun(c *gin.Context) {
	var request requests.SubmitRunRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ErrorResponse(c, appErrors.NewBadRequestError("invalid request body"))
		return
	}
	if err := request.Validate(); err != nil {
		ErrorResponse(c, err)
		return
	}

	now := time.Now()
	run := &dto.PipelineRun{
		RepoUrl:      request.RepoURL,
		Branch:       request.Branch,
		CommitHash:   request.CommitHash,
		PipelinePath: request.PipelinePath,
		Status:       constants.RunStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.services.QueueService.EnqueueRun(c.Request.Context(), run); err != nil {
		ErrorResponse(c, appErrors.NewInternalError(err))
		return
	}
	SuccessResponse(c, run)
}

// GetRun fetches a run record by ID.
func (h *RunHandler) GetRun(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, appErrors.NewBadRequestError("invalid run id"))
		return
	}

	run, err := h.services.QueueService.GetRun(c.Request.Context(), id)
	if err != nil {
		ErrorResponse(c, appErrors.NewInternalError(err))
		return
	}
	if run == nil {
		ErrorResponse(c, appErrors.NewNotFoundError("run not found"))
		return
	}
	SuccessResponse(c, run)
}

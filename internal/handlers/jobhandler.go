package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerhive/jobboard/internal/auth"
	"github.com/careerhive/jobboard/internal/dtos"
	"github.com/careerhive/jobboard/internal/services"
)

type JobHandler struct {
	JobService         *services.JobService
	ApplicationService *services.ApplicationService
	LLMService         *services.LLMService
}

// NewJobHandler creates the handler with dependencies. llm may be nil when
// extraction is not configured.
func NewJobHandler(jobs *services.JobService, applications *services.ApplicationService, llm *services.LLMService) *JobHandler {
	return &JobHandler{
		JobService:         jobs,
		ApplicationService: applications,
		LLMService:         llm,
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateJob is the POST /jobs endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job payload: " + err.Error()})
		return
	}

	job, err := h.JobService.CreateJob(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs is the GET /jobs endpoint with optional search/type/location
// filters.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query: " + err.Error()})
		return
	}

	jobs, err := h.JobService.ListJobs(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/:id endpoint.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.JobService.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is the DELETE /jobs/:id endpoint. Only the poster can delete.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	err := h.JobService.DeleteJob(c.Request.Context(), id, auth.UserID(c))
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
	case errors.Is(err, services.ErrNotJobOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this job"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
	}
}

// ApplyToJob is the POST /jobs/apply endpoint. The application is relayed to
// the job's contact email and never stored.
func (h *JobHandler) ApplyToJob(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application payload: " + err.Error()})
		return
	}

	err := h.ApplicationService.Apply(c.Request.Context(), &req)
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Job or poster not found"})
	case errors.Is(err, services.ErrDispatchFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send application"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send application"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Application sent"})
	}
}

// ExtractJob is the POST /jobs/extract endpoint: turn pasted posting HTML
// into a draft job payload.
func (h *JobHandler) ExtractJob(c *gin.Context) {
	if h.LLMService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Extraction is not configured"})
		return
	}

	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	extractedJSON, err := h.LLMService.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Extraction failed: " + err.Error()})
		return
	}

	// json.RawMessage keeps the model output from being escaped as a string.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}

// jobID parses the :id param. A non-numeric id can't reference a job, so it
// reads as not found.
func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return 0, false
	}
	return uint(id), true
}

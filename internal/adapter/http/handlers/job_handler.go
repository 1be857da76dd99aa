package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "mechmarket/internal/adapter/http/dto/request"
	response "mechmarket/internal/adapter/http/dto/response"
	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase"
	"mechmarket/pkg"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for the job lifecycle: creation,
// event-driven transitions, cancellation and the per-status action list.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), usecase.CreateJobInput{
		CustomerID:    payload.CustomerID,
		Category:      payload.Category,
		Urgency:       entities.JobUrgency(strings.TrimSpace(payload.Urgency)),
		Price:         payload.Price,
		ScheduledDate: payload.ScheduledDate,
		ScheduledTime: payload.ScheduledTime,
		Location:      payload.Location,
		Images:        payload.Images,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// TransitionJob applies one lifecycle event to the job. Illegal edges come
// back as ILLEGAL_TRANSITION and leave the job untouched.
func (h *JobHandler) TransitionJob(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Transition(c.Request.Context(), c.Param("job_id"), payload.ResolveEvent())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// CancelJob cancels the job, resolving any open change orders (voiding
// escrow holds) before the status flips.
func (h *JobHandler) CancelJob(c *gin.Context) {
	job, err := h.usecase.Cancel(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) GetActions(c *gin.Context) {
	jobID := c.Param("job_id")
	actions, err := h.usecase.Actions(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActions(jobID, actions))
}

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

var errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)

// ChangeOrderHandler handles HTTP requests for supplemental work proposals
// and their escrow lifecycle.

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

func (h *ChangeOrderHandler) Propose(c *gin.Context) {
	var payload request.ProposeChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	expiresAt, err := payload.ResolveExpiresAt()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid expires_at: must be RFC3339", http.StatusBadRequest).ToHTTPError())
		return
	}

	co, err := h.usecase.Propose(
		c.Request.Context(),
		payload.JobID,
		payload.Title,
		payload.Description,
		payload.ResolveLineItems(),
		entities.ChangeOrderUrgency(strings.TrimSpace(payload.Urgency)),
		expiresAt,
	)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(co))
}

// Approve moves the change order to approved and places the escrow hold.
// A hold failure leaves it approved; the client may retry this endpoint.
func (h *ChangeOrderHandler) Approve(c *gin.Context) {
	h.respond(c, usecase.DecisionApprove)
}

func (h *ChangeOrderHandler) Reject(c *gin.Context) {
	h.respond(c, usecase.DecisionReject)
}

func (h *ChangeOrderHandler) respond(c *gin.Context, decision usecase.ChangeOrderDecision) {
	co, err := h.usecase.Respond(c.Request.Context(), c.Param("change_order_id"), decision)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

// Release captures the escrow hold and marks the change order paid. Already
// paid change orders are returned unchanged.
func (h *ChangeOrderHandler) Release(c *gin.Context) {
	co, err := h.usecase.Release(c.Request.Context(), c.Param("change_order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

func (h *ChangeOrderHandler) GetChangeOrder(c *gin.Context) {
	co, err := h.usecase.GetByID(c.Request.Context(), c.Param("change_order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChangeOrder(co))
}

func (h *ChangeOrderHandler) ListJobChangeOrders(c *gin.Context) {
	list, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChangeOrders(list))
}

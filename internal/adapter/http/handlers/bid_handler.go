package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "mechmarket/internal/adapter/http/dto/request"
	response "mechmarket/internal/adapter/http/dto/response"
	"mechmarket/internal/usecase"
	"mechmarket/pkg"
)

var errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)

// BidHandler handles HTTP requests for mechanic bids.

type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.SubmitBid(
		c.Request.Context(),
		payload.JobID,
		payload.MechanicID,
		payload.Amount,
		payload.Message,
		payload.EstimatedDuration,
	)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// AcceptBid assigns the bid's mechanic to the job. A concurrent accept on
// the same job loses with ALREADY_ASSIGNED; the losing bid stays pending.
func (h *BidHandler) AcceptBid(c *gin.Context) {
	var payload request.AcceptBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AcceptBid(c.Request.Context(), payload.JobID, c.Param("bid_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *BidHandler) WithdrawBid(c *gin.Context) {
	bid, err := h.usecase.WithdrawBid(c.Request.Context(), c.Param("bid_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) ListJobBids(c *gin.Context) {
	bids, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBids(bids))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"mechmarket/internal/usecase"
	"mechmarket/pkg"
)

// mapDomainError translates the usecase error taxonomy into the wire shape.
// Every handler funnels through here so a given domain error always maps to
// the same code and status.
func mapDomainError(err error) *pkg.AppError {
	if ve, ok := usecase.AsValidationError(err); ok {
		return pkg.NewDomainErrorSimple(
			"VALIDATION_ERROR",
			fmt.Sprintf("Invalid %s: %s", ve.Field, ve.Reason),
			http.StatusBadRequest,
		)
	}
	switch {
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not allowed in current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		return pkg.NewDomainErrorSimple("ALREADY_ASSIGNED", "Job is already assigned to a mechanic", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", "Payment operation failed, retry later", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

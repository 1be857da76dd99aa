package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mechmarket/internal/adapter/http/handlers/mocks"
	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{ID: "job-1", Status: entities.JobStatusOpen, CustomerID: "cust-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_id":"cust-1","category":"brakes"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "job-1" || body["status"] != "open" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_TransitionJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/transition", h.TransitionJob)

		uc.EXPECT().Transition(gomock.Any(), "job-1", entities.JobEventWorkStarted).Return(entities.Job{}, usecase.ErrIllegalTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/transition", bytes.NewBufferString(`{"event":"work_started"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/transition", h.TransitionJob)

		uc.EXPECT().Transition(gomock.Any(), "job-1", entities.JobEventScheduleAccepted).Return(entities.Job{ID: "job-1", Status: entities.JobStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/transition", bytes.NewBufferString(`{"event":"schedule_accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.GET("/v1/jobs/:job_id/actions", h.GetActions)

	uc.EXPECT().Actions(gomock.Any(), "job-1").Return([]entities.JobAction{entities.JobActionView, entities.JobActionSchedule}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/actions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	actions, _ := body["actions"].([]any)
	if len(actions) != 2 {
		t.Fatalf("unexpected actions: %s", w.Body.String())
	}
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.NewValidationError("amount", "must be positive"), http.StatusBadRequest},
		{usecase.ErrIllegalTransition, http.StatusConflict},
		{usecase.ErrInvalidState, http.StatusConflict},
		{usecase.ErrAlreadyAssigned, http.StatusConflict},
		{usecase.ErrPaymentFailed, http.StatusBadGateway},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrBidNotFound, http.StatusNotFound},
		{usecase.ErrChangeOrderNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapDomainError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("mapDomainError(%v) = %d, want %d", tc.err, got.HTTPStatus, tc.status)
		}
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/summary"
	"github.com/clockwork-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SummaryHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	CheckValidation(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	Invalidate(w http.ResponseWriter, r *http.Request)
	BulkValidate(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{
		summaryService: summaryService,
	}
}

// monthParams reads employeeID, year and month out of the URL.
func monthParams(r *http.Request) (string, int, time.Month, error) {
	employeeID := chi.URLParam(r, "employeeID")

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return "", 0, 0, errors.New("year must be a number")
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		return "", 0, 0, errors.New("month must be between 1 and 12")
	}

	return employeeID, year, time.Month(month), nil
}

// GetMonthly implements SummaryHandler.
func (h *summaryHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, err := monthParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.summaryService.GetMonthly(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckValidation implements SummaryHandler.
func (h *summaryHandlerImpl) CheckValidation(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month, err := monthParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.summaryService.CheckValidation(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Validate implements SummaryHandler.
func (h *summaryHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req summary.MonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.summaryService.Validate(r.Context(), req)
	if err != nil {
		if errors.Is(err, summary.ErrValidationBlocked) {
			// The refusal carries the exact pending count.
			response.Conflict(w, "Month has "+strconv.Itoa(result.PendingDays)+" unresolved pending days")
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month validated", result)
}

// Recalculate implements SummaryHandler.
func (h *summaryHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req summary.MonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.summaryService.Recalculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month recalculated", result)
}

// Invalidate implements SummaryHandler.
func (h *summaryHandlerImpl) Invalidate(w http.ResponseWriter, r *http.Request) {
	var req summary.MonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.summaryService.Invalidate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month invalidated", nil)
}

// BulkValidate implements SummaryHandler.
func (h *summaryHandlerImpl) BulkValidate(w http.ResponseWriter, r *http.Request) {
	var req summary.BulkValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.summaryService.BulkValidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

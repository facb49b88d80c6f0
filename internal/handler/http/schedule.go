package http

import (
	"net/http"
	"time"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwork-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetTimetable(w http.ResponseWriter, r *http.Request)
	GetDaySchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	resolver schedule.ResolverService
}

func NewScheduleHandler(resolver schedule.ResolverService) ScheduleHandler {
	return &scheduleHandlerImpl{
		resolver: resolver,
	}
}

// GetTimetable implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetTimetable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.resolver.Timetable(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDaySchedule implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	intervals, err := h.resolver.IntervalsOn(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedule.DayScheduleResponse{
		EmployeeID: employeeID,
		Date:       date.Format("2006-01-02"),
		DayOff:     len(intervals) == 0,
		Intervals:  schedule.MapIntervalsToResponse(intervals),
	})
}

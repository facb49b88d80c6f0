package schedule

type IntervalResponse struct {
	ID           string `json:"id"`
	Weekday      int    `json:"weekday"`
	StartTime    string `json:"start_time"` // "15:04"
	EndTime      string `json:"end_time"`   // "15:04"
	BreakMinutes int    `json:"break_minutes"`
}

type TimetableResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Intervals []IntervalResponse `json:"intervals"`
}

type DayScheduleResponse struct {
	EmployeeID string             `json:"employee_id"`
	Date       string             `json:"date"`
	DayOff     bool               `json:"day_off"`
	Intervals  []IntervalResponse `json:"intervals"`
}

func mapIntervalToResponse(iv Interval) IntervalResponse {
	return IntervalResponse{
		ID:           iv.ID,
		Weekday:      iv.Weekday,
		StartTime:    iv.StartTime.Format("15:04"),
		EndTime:      iv.EndTime.Format("15:04"),
		BreakMinutes: iv.BreakMinutes,
	}
}

// MapIntervalsToResponse converts resolved intervals for transport.
func MapIntervalsToResponse(intervals []Interval) []IntervalResponse {
	out := make([]IntervalResponse, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, mapIntervalToResponse(iv))
	}
	return out
}

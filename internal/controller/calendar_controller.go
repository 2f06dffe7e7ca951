// internal/controller/calendar_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/unclebandit/contentcal-backend/internal/calendar"
	"github.com/unclebandit/contentcal-backend/internal/service"
)

type CalendarController struct {
	CalendarService *service.CalendarService
}

// GetMonth serves the month view: grid cells plus the day-to-campaigns
// mapping. Months are zero-based in the query, matching the UI. An optional
// today=YYYY-MM-DD pins the is_today/is_past flags for deterministic output;
// otherwise the server clock is read once here.
func (c *CalendarController) GetMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	today := calendar.Today(time.Now())
	if v := r.URL.Query().Get("today"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "invalid today date, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		today = calendar.Today(t)
	}

	schedule, err := c.CalendarService.ScheduleForMonth(month, year, today)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

// ShiftMonth answers prev/next navigation, wrapping across year boundaries.
func (c *CalendarController) ShiftMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	newMonth, newYear, err := calendar.ShiftMonth(month, year, r.URL.Query().Get("direction"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"month": newMonth,
		"year":  newYear,
	})
}

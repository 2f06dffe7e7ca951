// internal/model/calendar.go
package model

// CalendarCell is one position in a month grid: either padding before the
// first of the month (Empty) or a numbered day. Cells are derived on demand
// and never persisted.
type CalendarCell struct {
	Day     int  `json:"day"`
	Empty   bool `json:"empty"`
	IsToday bool `json:"is_today"`
	IsPast  bool `json:"is_past"`
}

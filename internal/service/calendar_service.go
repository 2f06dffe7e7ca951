// internal/service/calendar_service.go
package service

import (
	"github.com/unclebandit/contentcal-backend/internal/calendar"
	"github.com/unclebandit/contentcal-backend/internal/model"
	"github.com/unclebandit/contentcal-backend/internal/repository"
)

type CalendarService struct {
	CampaignRepo repository.CampaignRepositoryInterface
}

// MonthSchedule is what the calendar view renders: the grid cells plus the
// day-to-campaigns mapping for one month.
type MonthSchedule struct {
	Month int                       `json:"month"`
	Year  int                       `json:"year"`
	Cells []model.CalendarCell      `json:"cells"`
	Days  map[int][]*model.Campaign `json:"days"`
}

// ScheduleForMonth joins the campaign store with the grid builder. Every day
// key 1..daysInMonth is present, empty list when nothing is scheduled, and
// campaigns whose day falls outside the month are left out entirely.
func (s *CalendarService) ScheduleForMonth(month, year int, today calendar.Date) (*MonthSchedule, error) {
	cells, err := calendar.BuildGrid(month, year, today)
	if err != nil {
		return nil, err
	}

	days := calendar.DaysInMonth(month, year)
	byDay := make(map[int][]*model.Campaign, days)
	for d := 1; d <= days; d++ {
		byDay[d] = []*model.Campaign{}
	}
	for c := range s.CampaignRepo.All() {
		if c.ScheduledDay >= 1 && c.ScheduledDay <= days {
			byDay[c.ScheduledDay] = append(byDay[c.ScheduledDay], c)
		}
	}

	return &MonthSchedule{Month: month, Year: year, Cells: cells, Days: byDay}, nil
}

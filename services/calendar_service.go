package services

import (
	"context"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"
)

// ViewMode selects the calendar projection.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
)

// DayEntry is one schedule row rendered into a day cell, with staff and
// project display fields resolved from the loaded sets. A dangling staff
// reference renders with an empty name and zero rate.
type DayEntry struct {
	ScheduleID   int     `json:"schedule_id"`
	StaffID      int     `json:"staff_id"`
	StaffName    string  `json:"staff_name"`
	DailyRate    float64 `json:"daily_rate"`
	ProjectID    int     `json:"project_id"`
	ProjectName  string  `json:"project_name"`
	ProjectColor string  `json:"project_color"`
}

// DayCell is one day of the calendar grid.
type DayCell struct {
	Date         string     `json:"date"`
	CurrentMonth bool       `json:"current_month"`
	Today        bool       `json:"today"`
	DailyCost    float64    `json:"daily_cost"`
	Schedules    []DayEntry `json:"schedules"`
}

// CalendarView is the projection of a date plus view mode onto a grid of
// day cells.
type CalendarView struct {
	View  ViewMode  `json:"view"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Days  []DayCell `json:"days"`
}

// CalendarService projects schedules onto month and week grids.
type CalendarService struct {
	store *store.Store
	now   func() time.Time
}

func NewCalendarService(s *store.Store) *CalendarService {
	return &CalendarService{store: s, now: time.Now}
}

// CalendarRange computes the display range for a date and view mode. Weeks
// run Sunday through Saturday. Month view widens to whole weeks: from the
// week start on or before the 1st to the week end on or after the last day,
// so a month always renders as 4-6 full rows of 7.
func CalendarRange(current time.Time, view ViewMode) (start, end time.Time) {
	if view == ViewWeek {
		return utils.StartOfWeek(current), utils.EndOfWeek(current)
	}
	return utils.StartOfWeek(utils.StartOfMonth(current)), utils.EndOfWeek(utils.EndOfMonth(current))
}

// View loads the schedules for the display range and builds the grid.
func (s *CalendarService) View(ctx context.Context, current time.Time, view ViewMode) (CalendarView, error) {
	start, end := CalendarRange(current, view)

	staff, err := s.store.Staff.List(ctx)
	if err != nil {
		return CalendarView{}, err
	}
	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return CalendarView{}, err
	}
	schedules, err := s.store.Schedules.ListByDateRange(ctx, start, end)
	if err != nil {
		return CalendarView{}, err
	}

	return BuildCalendar(current, view, s.now(), staff, projects, schedules), nil
}

// BuildCalendar is the pure projection: no data access, fully determined by
// its inputs. Exposed separately so the grid logic is testable with a fixed
// clock.
func BuildCalendar(current time.Time, view ViewMode, today time.Time, staff []models.Staff, projects []models.Project, schedules []models.Schedule) CalendarView {
	start, end := CalendarRange(current, view)

	staffByID := make(map[int]models.Staff, len(staff))
	for _, member := range staff {
		staffByID[member.StaffID] = member
	}
	projectsByID := make(map[int]models.Project, len(projects))
	for _, project := range projects {
		projectsByID[project.ProjectID] = project
	}

	byDay := make(map[string][]models.Schedule)
	for _, row := range schedules {
		day := utils.FormatDate(row.Date)
		byDay[day] = append(byDay[day], row)
	}

	cal := CalendarView{
		View:  view,
		Start: utils.FormatDate(start),
		End:   utils.FormatDate(end),
	}

	currentMonth := current.Month()
	currentYear := current.Year()
	for _, day := range utils.DaysBetween(start, end) {
		cell := DayCell{
			Date: utils.FormatDate(day),
			// Week view treats all seven days as current.
			CurrentMonth: view == ViewWeek || (day.Month() == currentMonth && day.Year() == currentYear),
			Today:        utils.SameDay(day, today),
			Schedules:    []DayEntry{},
		}
		for _, row := range byDay[cell.Date] {
			entry := DayEntry{
				ScheduleID: row.ScheduleID,
				StaffID:    row.StaffID,
				ProjectID:  row.ProjectID,
			}
			if member, ok := staffByID[row.StaffID]; ok {
				entry.StaffName = member.Name
				entry.DailyRate = member.DailyRate
				cell.DailyCost += member.DailyRate
			}
			if project, ok := projectsByID[row.ProjectID]; ok {
				entry.ProjectName = project.Name
				entry.ProjectColor = project.Color
			}
			cell.Schedules = append(cell.Schedules, entry)
		}
		cal.Days = append(cal.Days, cell)
	}
	return cal
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"
)

// ErrDuplicateStaff is returned when a day edit lists the same staff member
// twice.
var ErrDuplicateStaff = errors.New("staff member listed more than once")

// ErrInvalidStaff is returned when a day edit names a non-positive staff id.
var ErrInvalidStaff = errors.New("invalid staff id")

// DayAssignment is one desired (staff, project) pair for a day edit. A zero
// ProjectID means "no explicit choice" and falls back to the first project.
type DayAssignment struct {
	StaffID   int `json:"staff_id" binding:"required"`
	ProjectID int `json:"project_id"`
}

// ScheduleService implements the calendar editing protocol: replacing a
// whole day's assignments and moving a single assignment between days.
type ScheduleService struct {
	store *store.Store
}

func NewScheduleService(s *store.Store) *ScheduleService {
	return &ScheduleService{store: s}
}

// ReplaceDay swaps the full assignment set for a date. The store applies
// the swap atomically, so a failure never leaves the day half-edited. An
// empty assignment list clears the date.
func (s *ScheduleService) ReplaceDay(ctx context.Context, date time.Time, assignments []DayAssignment) ([]models.Schedule, error) {
	seen := make(map[int]struct{}, len(assignments))
	for _, a := range assignments {
		if a.StaffID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidStaff, a.StaffID)
		}
		if _, dup := seen[a.StaffID]; dup {
			return nil, fmt.Errorf("%w: staff id %d", ErrDuplicateStaff, a.StaffID)
		}
		seen[a.StaffID] = struct{}{}
	}

	fallback, err := s.defaultProjectID(ctx, assignments)
	if err != nil {
		return nil, err
	}

	day := utils.DateOnly(date)
	rows := make([]models.Schedule, 0, len(assignments))
	for _, a := range assignments {
		projectID := a.ProjectID
		if projectID == 0 {
			projectID = fallback
		}
		rows = append(rows, models.Schedule{
			Date:      day,
			StaffID:   a.StaffID,
			ProjectID: projectID,
		})
	}

	return s.store.Schedules.ReplaceDay(ctx, day, rows)
}

// Move reassigns one schedule row to a new date, leaving staff and project
// untouched. Moving onto the row's current date is a no-op; the second
// return value reports whether anything changed.
func (s *ScheduleService) Move(ctx context.Context, id int, target time.Time) (models.Schedule, bool, error) {
	row, err := s.store.Schedules.Get(ctx, id)
	if err != nil {
		return models.Schedule{}, false, err
	}

	day := utils.DateOnly(target)
	if utils.SameDay(row.Date, day) {
		return row, false, nil
	}

	updated, err := s.store.Schedules.Update(ctx, id, store.ScheduleUpdate{Date: &day})
	if err != nil {
		return models.Schedule{}, false, err
	}
	return updated, true, nil
}

// defaultProjectID resolves the fallback project for assignments that named
// none: the first project by id, or zero when no projects exist. The lookup
// is skipped when every assignment chose explicitly.
func (s *ScheduleService) defaultProjectID(ctx context.Context, assignments []DayAssignment) (int, error) {
	needed := false
	for _, a := range assignments {
		if a.ProjectID == 0 {
			needed = true
			break
		}
	}
	if !needed {
		return 0, nil
	}

	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(projects) == 0 {
		return 0, nil
	}
	first := projects[0].ProjectID
	for _, p := range projects[1:] {
		if p.ProjectID < first {
			first = p.ProjectID
		}
	}
	return first, nil
}

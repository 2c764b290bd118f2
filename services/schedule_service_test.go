package services

import (
	"context"
	"errors"
	"testing"

	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()

	for _, member := range []models.Staff{
		{Name: "Amelia", Role: "Manager", DailyRate: 300},
		{Name: "Ben", Role: "Electrician", DailyRate: 200},
		{Name: "Carla", Role: "Carpenter", DailyRate: 100},
	} {
		if _, err := s.Staff.Create(ctx, member); err != nil {
			t.Fatalf("seed staff: %v", err)
		}
	}
	for _, project := range []models.Project{
		{Name: "Extension", Status: models.ProjectStatusActive},
		{Name: "Barn", Status: models.ProjectStatusActive},
	} {
		if _, err := s.Projects.Create(ctx, project); err != nil {
			t.Fatalf("seed projects: %v", err)
		}
	}
	return s
}

func TestReplaceDay(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)
	target := testDate(3)

	if _, err := s.Schedules.CreateBatch(ctx, []models.Schedule{
		{Date: target, StaffID: 1, ProjectID: 1},
		{Date: target, StaffID: 2, ProjectID: 1},
	}); err != nil {
		t.Fatalf("seed schedules: %v", err)
	}

	rows, err := svc.ReplaceDay(ctx, target, []DayAssignment{
		{StaffID: 2, ProjectID: 2},
		{StaffID: 3, ProjectID: 1},
	})
	if err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	stored, _ := s.Schedules.ListByDate(ctx, target)
	if len(stored) != 2 {
		t.Fatalf("day holds %d rows, want 2", len(stored))
	}
	if stored[0].StaffID != 2 || stored[0].ProjectID != 2 {
		t.Errorf("first row = %+v", stored[0])
	}
}

func TestReplaceDayEmptyClearsDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)
	target := testDate(3)

	if _, err := s.Schedules.Create(ctx, models.Schedule{Date: target, StaffID: 1, ProjectID: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows, err := svc.ReplaceDay(ctx, target, nil)
	if err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
	stored, _ := s.Schedules.ListByDate(ctx, target)
	if len(stored) != 0 {
		t.Fatalf("day still holds %d rows", len(stored))
	}
}

func TestReplaceDayRejectsDuplicateStaff(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)
	target := testDate(3)

	if _, err := s.Schedules.Create(ctx, models.Schedule{Date: target, StaffID: 1, ProjectID: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.ReplaceDay(ctx, target, []DayAssignment{
		{StaffID: 2, ProjectID: 1},
		{StaffID: 2, ProjectID: 2},
	})
	if !errors.Is(err, ErrDuplicateStaff) {
		t.Fatalf("err = %v, want ErrDuplicateStaff", err)
	}

	// A rejected edit must leave the day untouched.
	stored, _ := s.Schedules.ListByDate(ctx, target)
	if len(stored) != 1 || stored[0].StaffID != 1 {
		t.Fatalf("day changed after rejected edit: %+v", stored)
	}
}

func TestReplaceDayRejectsInvalidStaffID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)
	target := testDate(3)

	if _, err := s.Schedules.Create(ctx, models.Schedule{Date: target, StaffID: 1, ProjectID: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, id := range []int{0, -1} {
		_, err := svc.ReplaceDay(ctx, target, []DayAssignment{{StaffID: id, ProjectID: 1}})
		if !errors.Is(err, ErrInvalidStaff) {
			t.Fatalf("staff id %d: err = %v, want ErrInvalidStaff", id, err)
		}
	}

	stored, _ := s.Schedules.ListByDate(ctx, target)
	if len(stored) != 1 {
		t.Fatalf("day changed after rejected edit: %+v", stored)
	}
}

func TestReplaceDayDefaultProject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)

	rows, err := svc.ReplaceDay(ctx, testDate(3), []DayAssignment{
		{StaffID: 1},
		{StaffID: 2, ProjectID: 2},
	})
	if err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	// Project 1 has the lowest id and backs assignments that named none.
	if rows[0].ProjectID != 1 {
		t.Errorf("defaulted project = %d, want 1", rows[0].ProjectID)
	}
	if rows[1].ProjectID != 2 {
		t.Errorf("explicit project = %d, want 2", rows[1].ProjectID)
	}
}

func TestReplaceDayNoProjects(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	if _, err := s.Staff.Create(ctx, models.Staff{Name: "Amelia", DailyRate: 300}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewScheduleService(s)

	rows, err := svc.ReplaceDay(ctx, testDate(3), []DayAssignment{{StaffID: 1}})
	if err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	if rows[0].ProjectID != 0 {
		t.Errorf("project = %d, want 0 when no projects exist", rows[0].ProjectID)
	}
}

func TestMove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)

	source := testDate(3)
	target := testDate(10)
	row, err := s.Schedules.Create(ctx, models.Schedule{Date: source, StaffID: 1, ProjectID: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	moved, changed, err := svc.Move(ctx, row.ScheduleID, target)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !changed {
		t.Fatal("changed = false, want true")
	}
	if moved.ScheduleID != row.ScheduleID {
		t.Errorf("id changed on move: %d -> %d", row.ScheduleID, moved.ScheduleID)
	}
	if moved.StaffID != 1 || moved.ProjectID != 1 {
		t.Errorf("staff/project changed on move: %+v", moved)
	}

	onSource, _ := s.Schedules.ListByDate(ctx, source)
	if len(onSource) != 0 {
		t.Errorf("source day still holds %d rows", len(onSource))
	}
	onTarget, _ := s.Schedules.ListByDate(ctx, target)
	if len(onTarget) != 1 {
		t.Errorf("target day holds %d rows, want 1", len(onTarget))
	}
}

func TestMoveSameDayIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)

	source := testDate(3)
	row, err := s.Schedules.Create(ctx, models.Schedule{Date: source, StaffID: 1, ProjectID: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	moved, changed, err := svc.Move(ctx, row.ScheduleID, source)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if changed {
		t.Fatal("changed = true, want false for same-day move")
	}
	if moved.ScheduleID != row.ScheduleID {
		t.Errorf("returned row id = %d, want %d", moved.ScheduleID, row.ScheduleID)
	}
}

func TestMoveMissingSchedule(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := NewScheduleService(s)

	_, _, err := svc.Move(ctx, 99, testDate(3))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

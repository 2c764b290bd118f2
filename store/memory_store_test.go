package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/utils"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestMemoryStaffCreateAssignsNextID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.Staff.Create(ctx, models.Staff{Name: "Amelia", Role: "Manager", DailyRate: 300})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.StaffID != 1 {
		t.Fatalf("first id = %d, want 1", first.StaffID)
	}

	second, err := s.Staff.Create(ctx, models.Staff{Name: "Ben", Role: "Electrician", DailyRate: 260})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.StaffID != 2 {
		t.Fatalf("second id = %d, want 2", second.StaffID)
	}

	// Allocation is max(id)+1, so deleting the highest id frees it.
	if err := s.Staff.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third, err := s.Staff.Create(ctx, models.Staff{Name: "Carla", Role: "Carpenter", DailyRate: 230})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.StaffID != 2 {
		t.Fatalf("id after delete = %d, want 2 (max+1 of remaining)", third.StaffID)
	}
}

func TestMemoryStaffNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Staff.Get(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
	if err := s.Staff.Delete(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete missing = %v, want ErrNotFound", err)
	}
	if _, err := s.Staff.Update(ctx, 99, StaffUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update missing = %v, want ErrNotFound", err)
	}
}

func TestMemoryStaffPartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	member, err := s.Staff.Create(ctx, models.Staff{Name: "Amelia", Role: "Manager", DailyRate: 300})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rate := 320.0
	updated, err := s.Staff.Update(ctx, member.StaffID, StaffUpdate{DailyRate: &rate})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DailyRate != 320 {
		t.Errorf("daily rate = %v, want 320", updated.DailyRate)
	}
	if updated.Name != "Amelia" || updated.Role != "Manager" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestMemoryScheduleDateQueries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	dates := []string{"2026-08-03", "2026-08-03", "2026-08-10", "2026-09-01"}
	for i, d := range dates {
		_, err := s.Schedules.Create(ctx, models.Schedule{Date: day(t, d), StaffID: i + 1, ProjectID: 1})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	onThird, err := s.Schedules.ListByDate(ctx, day(t, "2026-08-03"))
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(onThird) != 2 {
		t.Fatalf("rows on 2026-08-03 = %d, want 2", len(onThird))
	}

	// Range bounds are inclusive on both ends.
	august, err := s.Schedules.ListByDateRange(ctx, day(t, "2026-08-01"), day(t, "2026-08-31"))
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(august) != 3 {
		t.Fatalf("rows in August = %d, want 3", len(august))
	}
	edge, err := s.Schedules.ListByDateRange(ctx, day(t, "2026-08-10"), day(t, "2026-08-10"))
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(edge) != 1 {
		t.Fatalf("rows on single-day range = %d, want 1", len(edge))
	}
}

func TestMemoryScheduleCreateBatch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rows, err := s.Schedules.CreateBatch(ctx, []models.Schedule{
		{Date: day(t, "2026-08-03"), StaffID: 1, ProjectID: 1},
		{Date: day(t, "2026-08-03"), StaffID: 2, ProjectID: 2},
		{Date: day(t, "2026-08-04"), StaffID: 1, ProjectID: 1},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("created %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if row.ScheduleID != i+1 {
			t.Errorf("row %d id = %d, want %d", i, row.ScheduleID, i+1)
		}
	}
}

func TestMemoryScheduleReplaceDay(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	target := day(t, "2026-08-03")
	other := day(t, "2026-08-04")
	if _, err := s.Schedules.CreateBatch(ctx, []models.Schedule{
		{Date: target, StaffID: 1, ProjectID: 1},
		{Date: target, StaffID: 2, ProjectID: 1},
		{Date: other, StaffID: 3, ProjectID: 2},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	replaced, err := s.Schedules.ReplaceDay(ctx, target, []models.Schedule{
		{StaffID: 4, ProjectID: 2},
	})
	if err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	if len(replaced) != 1 || replaced[0].StaffID != 4 {
		t.Fatalf("replaced rows = %+v, want one row for staff 4", replaced)
	}

	onTarget, _ := s.Schedules.ListByDate(ctx, target)
	if len(onTarget) != 1 {
		t.Fatalf("rows on target day = %d, want 1", len(onTarget))
	}
	onOther, _ := s.Schedules.ListByDate(ctx, other)
	if len(onOther) != 1 || onOther[0].StaffID != 3 {
		t.Fatalf("other day disturbed: %+v", onOther)
	}
}

func TestMemoryScheduleReplaceDayEmptyClearsDate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	target := day(t, "2026-08-03")
	if _, err := s.Schedules.Create(ctx, models.Schedule{Date: target, StaffID: 1, ProjectID: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	replaced, err := s.Schedules.ReplaceDay(ctx, target, nil)
	if err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	if len(replaced) != 0 {
		t.Fatalf("replaced rows = %d, want 0", len(replaced))
	}
	rows, _ := s.Schedules.ListByDate(ctx, target)
	if len(rows) != 0 {
		t.Fatalf("rows after clearing = %d, want 0", len(rows))
	}
}

func TestMemoryFixturesPreserveIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(WithFixtures(Fixtures()))

	want := Fixtures()
	staff, err := s.Staff.List(ctx)
	if err != nil {
		t.Fatalf("list staff: %v", err)
	}
	if len(staff) != len(want.Staff) {
		t.Fatalf("staff count = %d, want %d", len(staff), len(want.Staff))
	}
	for i, member := range staff {
		if member.StaffID != want.Staff[i].StaffID {
			t.Errorf("staff %d id = %d, want %d", i, member.StaffID, want.Staff[i].StaffID)
		}
	}

	if _, err := s.Users.GetByEmail(ctx, "admin@example.com"); err != nil {
		t.Fatalf("fixture admin missing: %v", err)
	}
}

func TestMemoryLatencyHonoursContext(t *testing.T) {
	s := NewMemoryStore(WithLatency(time.Second, 2*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.Staff.List(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("cancelled call took %v", elapsed)
	}
}

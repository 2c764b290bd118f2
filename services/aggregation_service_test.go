package services

import (
	"math"
	"testing"
	"time"

	"staff-scheduler-api/models"
)

func testDate(day int) time.Time {
	return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)
}

func testStaff() []models.Staff {
	return []models.Staff{
		{StaffID: 1, Name: "Amelia", Role: "Manager", DailyRate: 300},
		{StaffID: 2, Name: "Ben", Role: "Electrician", DailyRate: 200},
		{StaffID: 3, Name: "Carla", Role: "Carpenter", DailyRate: 100},
	}
}

func testProjects() []models.Project {
	return []models.Project{
		{ProjectID: 1, Name: "Extension", Status: models.ProjectStatusActive},
		{ProjectID: 2, Name: "Barn", Status: models.ProjectStatusActive},
	}
}

func TestProjectCosts(t *testing.T) {
	schedules := []models.Schedule{
		{ScheduleID: 1, Date: testDate(3), StaffID: 1, ProjectID: 1},
		{ScheduleID: 2, Date: testDate(4), StaffID: 1, ProjectID: 1},
		{ScheduleID: 3, Date: testDate(3), StaffID: 2, ProjectID: 1},
		{ScheduleID: 4, Date: testDate(3), StaffID: 3, ProjectID: 2},
	}
	jobCosts := []models.JobCost{
		{JobCostID: 1, ProjectID: 1, Cost: 500, Date: testDate(1)},
		{JobCostID: 2, ProjectID: 2, Cost: 250, Date: testDate(2)},
	}

	costs := ProjectCosts(testProjects(), testStaff(), jobCosts, schedules)
	if len(costs) != 2 {
		t.Fatalf("got %d cost rows, want 2", len(costs))
	}

	first := costs[0]
	if first.DirectCost != 500 {
		t.Errorf("project 1 direct cost = %v, want 500", first.DirectCost)
	}
	// Two Amelia days at 300 plus one Ben day at 200.
	if first.StaffCost != 800 {
		t.Errorf("project 1 staff cost = %v, want 800", first.StaffCost)
	}
	if first.TotalDays != 3 {
		t.Errorf("project 1 total days = %d, want 3", first.TotalDays)
	}
	// One increment per schedule row, even when the same staff member
	// appears on several days.
	if first.StaffCount != 3 {
		t.Errorf("project 1 staff count = %d, want 3 assignments", first.StaffCount)
	}
	if first.TotalCost() != 1300 {
		t.Errorf("project 1 total cost = %v, want 1300", first.TotalCost())
	}

	second := costs[1]
	if second.StaffCost != 100 || second.TotalDays != 1 || second.StaffCount != 1 {
		t.Errorf("project 2 breakdown = %+v", second)
	}
}

func TestProjectCostsSkipsDanglingStaff(t *testing.T) {
	schedules := []models.Schedule{
		{ScheduleID: 1, Date: testDate(3), StaffID: 99, ProjectID: 1},
		{ScheduleID: 2, Date: testDate(3), StaffID: 1, ProjectID: 1},
	}

	costs := ProjectCosts(testProjects(), testStaff(), nil, schedules)
	if costs[0].StaffCost != 300 {
		t.Errorf("staff cost = %v, want 300 (dangling row ignored)", costs[0].StaffCost)
	}
	if costs[0].TotalDays != 1 {
		t.Errorf("total days = %d, want 1", costs[0].TotalDays)
	}
	if costs[0].StaffCount != 1 {
		t.Errorf("staff count = %d, want 1", costs[0].StaffCount)
	}
}

func TestStaffMetricsWorkdaysAddDaysNotEarnings(t *testing.T) {
	schedules := []models.Schedule{
		{ScheduleID: 1, Date: testDate(3), StaffID: 1, ProjectID: 1},
		{ScheduleID: 2, Date: testDate(4), StaffID: 1, ProjectID: 2},
	}
	workdays := []models.StaffWorkday{
		{WorkdayID: 1, StaffID: 1, Date: testDate(5), NumberOfDaysWorked: 1.5},
	}

	metrics := StaffMetrics(testStaff(), schedules, workdays)
	amelia := metrics[0]
	if amelia.TotalDays != 3.5 {
		t.Errorf("total days = %v, want 3.5", amelia.TotalDays)
	}
	// Earnings come from scheduled days only.
	if amelia.TotalEarnings != 600 {
		t.Errorf("total earnings = %v, want 600", amelia.TotalEarnings)
	}
	if amelia.ProjectsWorked != 2 {
		t.Errorf("projects worked = %d, want 2", amelia.ProjectsWorked)
	}

	for _, metric := range metrics[1:] {
		if metric.TotalDays != 0 || metric.TotalEarnings != 0 {
			t.Errorf("idle staff %d has nonzero metrics: %+v", metric.Staff.StaffID, metric)
		}
	}
}

// When every reference resolves, total cost across projects must equal the
// sum of all job costs plus the daily rate over all schedule rows, and the
// staff share must equal total staff earnings.
func TestCostConservation(t *testing.T) {
	schedules := []models.Schedule{
		{ScheduleID: 1, Date: testDate(3), StaffID: 1, ProjectID: 1},
		{ScheduleID: 2, Date: testDate(3), StaffID: 2, ProjectID: 1},
		{ScheduleID: 3, Date: testDate(4), StaffID: 2, ProjectID: 2},
		{ScheduleID: 4, Date: testDate(4), StaffID: 3, ProjectID: 2},
		{ScheduleID: 5, Date: testDate(5), StaffID: 3, ProjectID: 1},
	}
	jobCosts := []models.JobCost{
		{JobCostID: 1, ProjectID: 1, Cost: 500, Date: testDate(1)},
		{JobCostID: 2, ProjectID: 2, Cost: 250, Date: testDate(2)},
	}

	costs := ProjectCosts(testProjects(), testStaff(), jobCosts, schedules)
	metrics := StaffMetrics(testStaff(), schedules, nil)

	var byProject, byStaff, total float64
	for _, pc := range costs {
		byProject += pc.StaffCost
		total += pc.TotalCost()
	}
	for _, sm := range metrics {
		byStaff += sm.TotalEarnings
	}
	if math.Abs(byProject-byStaff) > 1e-9 {
		t.Fatalf("staff cost by project %v != earnings by staff %v", byProject, byStaff)
	}

	// 500 + 250 direct, plus rates 300+200+200+100+100 scheduled.
	if math.Abs(total-1650) > 1e-9 {
		t.Fatalf("total cost = %v, want 1650", total)
	}
}

func TestTopCostlyProjectsStableOnTies(t *testing.T) {
	costs := []ProjectCost{
		{Project: models.Project{ProjectID: 1}, DirectCost: 100},
		{Project: models.Project{ProjectID: 2}, DirectCost: 300},
		{Project: models.Project{ProjectID: 3}, DirectCost: 100},
		{Project: models.Project{ProjectID: 4}, DirectCost: 200},
	}

	top := TopCostlyProjects(costs, 3)
	if len(top) != 3 {
		t.Fatalf("got %d projects, want 3", len(top))
	}
	wantOrder := []int{2, 4, 1}
	for i, want := range wantOrder {
		if top[i].Project.ProjectID != want {
			t.Errorf("position %d = project %d, want %d", i, top[i].Project.ProjectID, want)
		}
	}

	// n larger than the input returns everything.
	all := TopCostlyProjects(costs, 10)
	if len(all) != 4 {
		t.Errorf("got %d projects, want 4", len(all))
	}
}

func TestMostActiveStaffOrdering(t *testing.T) {
	metrics := []StaffMetric{
		{Staff: models.Staff{StaffID: 1}, TotalDays: 2},
		{Staff: models.Staff{StaffID: 2}, TotalDays: 5},
		{Staff: models.Staff{StaffID: 3}, TotalDays: 2},
	}

	top := MostActiveStaff(metrics, 2)
	if top[0].Staff.StaffID != 2 {
		t.Errorf("most active = staff %d, want 2", top[0].Staff.StaffID)
	}
	// Tie between 1 and 3 keeps input order.
	if top[1].Staff.StaffID != 1 {
		t.Errorf("second = staff %d, want 1", top[1].Staff.StaffID)
	}
}

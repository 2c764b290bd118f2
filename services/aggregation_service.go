package services

import (
	"context"
	"sort"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/store"
)

// ProjectCost is the cost breakdown for one project. StaffCost, TotalDays
// and StaffCount all increment once per schedule row whose staff reference
// resolves; rows pointing at deleted staff are skipped. StaffCount counts
// assignments, not distinct people.
type ProjectCost struct {
	Project    models.Project `json:"project"`
	DirectCost float64        `json:"direct_cost"`
	StaffCost  float64        `json:"staff_cost"`
	TotalDays  int            `json:"total_days"`
	StaffCount int            `json:"staff_count"`
}

// TotalCost is the combined direct and staff cost.
func (p ProjectCost) TotalCost() float64 {
	return p.DirectCost + p.StaffCost
}

// StaffMetric is the utilization summary for one staff member.
//
// TotalDays counts scheduled days plus fractional worked days. Earnings
// intentionally cover scheduled days only: worked-day records have no rate
// attached, and the established reporting behaviour excludes them.
type StaffMetric struct {
	Staff          models.Staff `json:"staff"`
	TotalDays      float64      `json:"total_days"`
	TotalEarnings  float64      `json:"total_earnings"`
	ProjectsWorked int          `json:"projects_worked"`
}

// DashboardStats is the full dashboard payload.
type DashboardStats struct {
	TotalProjectCost float64       `json:"total_project_cost"`
	TotalStaffCost   float64       `json:"total_staff_cost"`
	ActiveProjects   int           `json:"active_projects"`
	TotalStaff       int           `json:"total_staff"`
	ProjectCosts     []ProjectCost `json:"project_costs"`
	StaffMetrics     []StaffMetric `json:"staff_metrics"`
	TopProjects      []ProjectCost `json:"top_projects"`
	MostActiveStaff  []StaffMetric `json:"most_active_staff"`
	CurrentDate      string        `json:"current_date"`
}

// DashboardService computes cost and utilization aggregates. Everything is
// recomputed from a fresh snapshot on every call; there is no cached state.
type DashboardService struct {
	store *store.Store
}

func NewDashboardService(s *store.Store) *DashboardService {
	return &DashboardService{store: s}
}

// Stats loads all five entity sets and derives the dashboard view.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	staff, err := s.store.Staff.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	jobCosts, err := s.store.JobCosts.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	schedules, err := s.store.Schedules.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	workdays, err := s.store.Workdays.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	projectCosts := ProjectCosts(projects, staff, jobCosts, schedules)
	staffMetrics := StaffMetrics(staff, schedules, workdays)

	stats := DashboardStats{
		ProjectCosts:    projectCosts,
		StaffMetrics:    staffMetrics,
		TopProjects:     TopCostlyProjects(projectCosts, 5),
		MostActiveStaff: MostActiveStaff(staffMetrics, 5),
		TotalStaff:      len(staff),
		CurrentDate:     time.Now().Format("2006-01-02"),
	}
	for _, pc := range projectCosts {
		stats.TotalProjectCost += pc.TotalCost()
	}
	for _, sm := range staffMetrics {
		stats.TotalStaffCost += sm.TotalEarnings
	}
	for _, p := range projects {
		if p.Status == models.ProjectStatusActive {
			stats.ActiveProjects++
		}
	}
	return stats, nil
}

// ProjectCosts builds the per-project cost breakdown. Output order follows
// the input project order.
func ProjectCosts(projects []models.Project, staff []models.Staff, jobCosts []models.JobCost, schedules []models.Schedule) []ProjectCost {
	index := make(map[int]int, len(projects))
	out := make([]ProjectCost, 0, len(projects))
	for i, project := range projects {
		index[project.ProjectID] = i
		out = append(out, ProjectCost{Project: project})
	}

	for _, cost := range jobCosts {
		if i, ok := index[cost.ProjectID]; ok {
			out[i].DirectCost += cost.Cost
		}
	}

	rates := staffRates(staff)
	for _, row := range schedules {
		i, ok := index[row.ProjectID]
		if !ok {
			continue
		}
		rate, ok := rates[row.StaffID]
		if !ok {
			// Dangling staff reference from a non-cascading delete.
			continue
		}
		out[i].StaffCost += rate
		out[i].TotalDays++
		out[i].StaffCount++
	}
	return out
}

// StaffMetrics builds the per-staff utilization summary. Output order
// follows the input staff order.
func StaffMetrics(staff []models.Staff, schedules []models.Schedule, workdays []models.StaffWorkday) []StaffMetric {
	index := make(map[int]int, len(staff))
	out := make([]StaffMetric, 0, len(staff))
	projectSets := make([]map[int]struct{}, len(staff))
	for i, member := range staff {
		index[member.StaffID] = i
		out = append(out, StaffMetric{Staff: member})
		projectSets[i] = map[int]struct{}{}
	}

	for _, row := range schedules {
		i, ok := index[row.StaffID]
		if !ok {
			continue
		}
		out[i].TotalDays++
		out[i].TotalEarnings += out[i].Staff.DailyRate
		if row.ProjectID > 0 {
			projectSets[i][row.ProjectID] = struct{}{}
		}
	}

	for _, workday := range workdays {
		if i, ok := index[workday.StaffID]; ok {
			out[i].TotalDays += workday.NumberOfDaysWorked
		}
	}

	for i := range out {
		out[i].ProjectsWorked = len(projectSets[i])
	}
	return out
}

// TopCostlyProjects returns the n most expensive projects, descending by
// total cost. The sort is stable: ties keep their input order.
func TopCostlyProjects(costs []ProjectCost, n int) []ProjectCost {
	sorted := make([]ProjectCost, len(costs))
	copy(sorted, costs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCost() > sorted[j].TotalCost()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// MostActiveStaff returns the n staff members with the most total days,
// descending, stable on ties.
func MostActiveStaff(metrics []StaffMetric, n int) []StaffMetric {
	sorted := make([]StaffMetric, len(metrics))
	copy(sorted, metrics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalDays > sorted[j].TotalDays
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func staffRates(staff []models.Staff) map[int]float64 {
	rates := make(map[int]float64, len(staff))
	for _, member := range staff {
		rates[member.StaffID] = member.DailyRate
	}
	return rates
}

package store

import (
	"context"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/utils"
)

// FixtureData is the static dataset the mock backend starts with. The seed
// command loads the same set into a real database.
type FixtureData struct {
	Staff     []models.Staff
	Projects  []models.Project
	Schedules []models.Schedule
	JobCosts  []models.JobCost
	Workdays  []models.StaffWorkday
	Users     []models.User
}

// Fixtures returns the development dataset. Schedule, job cost and workday
// dates are placed inside the current month so the calendar view has
// something to show regardless of when the process starts.
func Fixtures() FixtureData {
	month := utils.StartOfMonth(time.Now())
	day := func(n int) time.Time { return month.AddDate(0, 0, n-1) }

	return FixtureData{
		Staff: []models.Staff{
			{StaffID: 1, Name: "Amelia Hart", Role: "Site Manager", DailyRate: 320},
			{StaffID: 2, Name: "Ben Okafor", Role: "Electrician", DailyRate: 260},
			{StaffID: 3, Name: "Carla Mendes", Role: "Carpenter", DailyRate: 230},
			{StaffID: 4, Name: "Dan Whittaker", Role: "Labourer", DailyRate: 150},
			{StaffID: 5, Name: "Elena Popescu", Role: "Painter", DailyRate: 180},
		},
		Projects: []models.Project{
			{ProjectID: 1, Name: "Riverside Extension", Description: "Two-storey rear extension", Status: models.ProjectStatusActive, Color: "#3b82f6", CreatedAt: month.AddDate(0, -2, 0)},
			{ProjectID: 2, Name: "Orchard Barn Conversion", Description: "Barn to residential conversion", Status: models.ProjectStatusActive, Color: "#10b981", CreatedAt: month.AddDate(0, -1, 0)},
			{ProjectID: 3, Name: "High Street Shopfit", Description: "Retail unit refurbishment", Status: models.ProjectStatusOnHold, Color: "#f59e0b", CreatedAt: month.AddDate(0, -1, 12)},
			{ProjectID: 4, Name: "Mill Lane Roofing", Description: "Roof replacement, completed spring", Status: models.ProjectStatusCompleted, Color: "#ef4444", CreatedAt: month.AddDate(0, -3, 0)},
		},
		Schedules: []models.Schedule{
			{ScheduleID: 1, Date: day(2), StaffID: 1, ProjectID: 1},
			{ScheduleID: 2, Date: day(2), StaffID: 2, ProjectID: 1},
			{ScheduleID: 3, Date: day(3), StaffID: 3, ProjectID: 2},
			{ScheduleID: 4, Date: day(5), StaffID: 1, ProjectID: 1},
			{ScheduleID: 5, Date: day(5), StaffID: 4, ProjectID: 2},
			{ScheduleID: 6, Date: day(9), StaffID: 2, ProjectID: 2},
			{ScheduleID: 7, Date: day(9), StaffID: 5, ProjectID: 1},
			{ScheduleID: 8, Date: day(12), StaffID: 3, ProjectID: 1},
			{ScheduleID: 9, Date: day(16), StaffID: 4, ProjectID: 1},
			{ScheduleID: 10, Date: day(16), StaffID: 5, ProjectID: 2},
		},
		JobCosts: []models.JobCost{
			{JobCostID: 1, ProjectID: 1, Cost: 1450, Date: day(2), Details: "Steel beams"},
			{JobCostID: 2, ProjectID: 1, Cost: 380, Date: day(8), Details: "Skip hire"},
			{JobCostID: 3, ProjectID: 2, Cost: 920, Date: day(4), Details: "Oak flooring"},
			{JobCostID: 4, ProjectID: 3, Cost: 210, Date: day(6), Details: "Survey fee"},
		},
		Workdays: []models.StaffWorkday{
			{WorkdayID: 1, StaffID: 1, Date: day(4), NumberOfDaysWorked: 1, Details: "Snagging visit"},
			{WorkdayID: 2, StaffID: 3, Date: day(6), NumberOfDaysWorked: 0.5, Details: "Half day, materials pickup"},
			{WorkdayID: 3, StaffID: 5, Date: day(10), NumberOfDaysWorked: 1, Details: "Touch-up work"},
		},
		Users: []models.User{
			{
				UserID: 1,
				Email:  "admin@example.com",
				Name:   "Admin",
				// bcrypt hash of "changeme"
				PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
				Role:         models.RoleAdmin,
			},
		},
	}
}

// Seed loads fixture data into any store through its public interfaces, so
// it works identically for the mock and database backends. Fixture ids are
// re-assigned by the target store; references are remapped accordingly.
func Seed(ctx context.Context, s *Store, data FixtureData) error {
	staffIDs := map[int]int{}
	for _, member := range data.Staff {
		oldID := member.StaffID
		created, err := s.Staff.Create(ctx, member)
		if err != nil {
			return err
		}
		staffIDs[oldID] = created.StaffID
	}

	projectIDs := map[int]int{}
	for _, project := range data.Projects {
		oldID := project.ProjectID
		created, err := s.Projects.Create(ctx, project)
		if err != nil {
			return err
		}
		projectIDs[oldID] = created.ProjectID
	}

	for _, row := range data.Schedules {
		row.StaffID = staffIDs[row.StaffID]
		row.ProjectID = projectIDs[row.ProjectID]
		if _, err := s.Schedules.Create(ctx, row); err != nil {
			return err
		}
	}

	for _, cost := range data.JobCosts {
		cost.ProjectID = projectIDs[cost.ProjectID]
		if _, err := s.JobCosts.Create(ctx, cost); err != nil {
			return err
		}
	}

	for _, workday := range data.Workdays {
		workday.StaffID = staffIDs[workday.StaffID]
		if _, err := s.Workdays.Create(ctx, workday); err != nil {
			return err
		}
	}

	for _, user := range data.Users {
		if _, err := s.Users.Create(ctx, user); err != nil {
			return err
		}
	}

	return nil
}

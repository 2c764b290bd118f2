// Package store holds the data access layer. Every entity type is reached
// through a small repository interface so the HTTP layer and the services
// never care whether records live in MySQL, SQLite or the in-memory mock.
package store

import (
	"context"
	"errors"
	"time"

	"staff-scheduler-api/models"
)

// ErrNotFound is returned when an operation targets a nonexistent id.
var ErrNotFound = errors.New("record not found")

// StaffStore manages staff records.
type StaffStore interface {
	List(ctx context.Context) ([]models.Staff, error)
	Get(ctx context.Context, id int) (models.Staff, error)
	Create(ctx context.Context, s models.Staff) (models.Staff, error)
	Update(ctx context.Context, id int, upd StaffUpdate) (models.Staff, error)
	// Delete does not cascade: schedule rows referencing the staff member
	// are left behind with a dangling reference.
	Delete(ctx context.Context, id int) error
}

// StaffUpdate is a partial update; nil fields are preserved.
type StaffUpdate struct {
	Name      *string
	Role      *string
	DailyRate *float64
}

// ProjectStore manages project records.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int) (models.Project, error)
	Create(ctx context.Context, p models.Project) (models.Project, error)
	Update(ctx context.Context, id int, upd ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, id int) error
}

// ProjectUpdate is a partial update; nil fields are preserved.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
	Color       *string
}

// ScheduleStore manages schedule rows and the day-scoped operations the
// calendar editing flow needs.
type ScheduleStore interface {
	List(ctx context.Context) ([]models.Schedule, error)
	Get(ctx context.Context, id int) (models.Schedule, error)
	ListByDate(ctx context.Context, date time.Time) ([]models.Schedule, error)
	// ListByDateRange returns rows whose date lies in [start, end] inclusive.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Schedule, error)
	Create(ctx context.Context, s models.Schedule) (models.Schedule, error)
	CreateBatch(ctx context.Context, rows []models.Schedule) ([]models.Schedule, error)
	Update(ctx context.Context, id int, upd ScheduleUpdate) (models.Schedule, error)
	Delete(ctx context.Context, id int) error
	DeleteByDate(ctx context.Context, date time.Time) error
	// ReplaceDay atomically swaps every row on the given date for the
	// supplied set. An empty set clears the date. There is no window in
	// which the date holds neither the old nor the new rows.
	ReplaceDay(ctx context.Context, date time.Time, rows []models.Schedule) ([]models.Schedule, error)
}

// ScheduleUpdate is a partial update; nil fields are preserved.
type ScheduleUpdate struct {
	Date      *time.Time
	StaffID   *int
	ProjectID *int
}

// JobCostStore manages direct project expenses.
type JobCostStore interface {
	List(ctx context.Context) ([]models.JobCost, error)
	Get(ctx context.Context, id int) (models.JobCost, error)
	Create(ctx context.Context, j models.JobCost) (models.JobCost, error)
	Update(ctx context.Context, id int, upd JobCostUpdate) (models.JobCost, error)
	Delete(ctx context.Context, id int) error
}

// JobCostUpdate is a partial update; nil fields are preserved.
type JobCostUpdate struct {
	ProjectID *int
	Cost      *float64
	Date      *time.Time
	Details   *string
}

// StaffWorkdayStore manages worked-day records.
type StaffWorkdayStore interface {
	List(ctx context.Context) ([]models.StaffWorkday, error)
	Get(ctx context.Context, id int) (models.StaffWorkday, error)
	Create(ctx context.Context, w models.StaffWorkday) (models.StaffWorkday, error)
	Update(ctx context.Context, id int, upd StaffWorkdayUpdate) (models.StaffWorkday, error)
	Delete(ctx context.Context, id int) error
}

// StaffWorkdayUpdate is a partial update; nil fields are preserved.
type StaffWorkdayUpdate struct {
	StaffID            *int
	Date               *time.Time
	NumberOfDaysWorked *float64
	Details            *string
}

// UserStore manages login accounts and their refresh sessions.
type UserStore interface {
	Get(ctx context.Context, id int) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	CreateSession(ctx context.Context, s models.UserSession) (models.UserSession, error)
	GetSession(ctx context.Context, token string) (models.UserSession, error)
	DeleteSession(ctx context.Context, token string) error
}

// Store bundles one repository per entity type. Both backends produce this
// same shape, so a *Store is all the rest of the application ever holds.
type Store struct {
	Staff     StaffStore
	Projects  ProjectStore
	Schedules ScheduleStore
	JobCosts  JobCostStore
	Workdays  StaffWorkdayStore
	Users     UserStore
}

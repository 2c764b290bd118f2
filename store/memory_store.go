package store

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/utils"
)

// memoryState holds every record behind one mutex. The mock backend is
// single-writer by construction: each operation takes the lock for its full
// duration, so ReplaceDay is atomic without any transaction machinery.
type memoryState struct {
	mu        sync.Mutex
	staff     []models.Staff
	projects  []models.Project
	schedules []models.Schedule
	jobCosts  []models.JobCost
	workdays  []models.StaffWorkday
	users     []models.User
	sessions  []models.UserSession

	minDelay time.Duration
	maxDelay time.Duration
	rng      *rand.Rand
}

// MemoryOption configures the in-memory backend.
type MemoryOption func(*memoryState)

// WithLatency makes every operation sleep a random duration in [min, max]
// to emulate network round-trips, the way the mock data layer behaves in
// development. Latency is off by default so tests stay fast.
func WithLatency(min, max time.Duration) MemoryOption {
	return func(s *memoryState) {
		if max < min {
			min, max = max, min
		}
		s.minDelay = min
		s.maxDelay = max
	}
}

// WithFixtures preloads the store with a dataset, keeping the ids the
// fixtures carry. Loading happens at construction, before any latency
// emulation applies.
func WithFixtures(data FixtureData) MemoryOption {
	return func(s *memoryState) {
		s.staff = append(s.staff, data.Staff...)
		s.projects = append(s.projects, data.Projects...)
		for _, row := range data.Schedules {
			row.Date = utils.DateOnly(row.Date)
			s.schedules = append(s.schedules, row)
		}
		for _, cost := range data.JobCosts {
			cost.Date = utils.DateOnly(cost.Date)
			s.jobCosts = append(s.jobCosts, cost)
		}
		for _, workday := range data.Workdays {
			workday.Date = utils.DateOnly(workday.Date)
			s.workdays = append(s.workdays, workday)
		}
		s.users = append(s.users, data.Users...)
	}
}

// NewMemoryStore returns an empty in-memory store. Preload it with
// WithFixtures, or Seed it through the public interfaces.
func NewMemoryStore(opts ...MemoryOption) *Store {
	state := &memoryState{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(state)
	}
	return &Store{
		Staff:     &memStaffStore{state},
		Projects:  &memProjectStore{state},
		Schedules: &memScheduleStore{state},
		JobCosts:  &memJobCostStore{state},
		Workdays:  &memWorkdayStore{state},
		Users:     &memUserStore{state},
	}
}

// delay emulates backend latency, honouring context cancellation.
func (s *memoryState) delay(ctx context.Context) error {
	if s.maxDelay <= 0 {
		return ctx.Err()
	}
	s.mu.Lock()
	d := s.minDelay
	if s.maxDelay > s.minDelay {
		d += time.Duration(s.rng.Int63n(int64(s.maxDelay - s.minDelay)))
	}
	s.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ---------------------------------------------------------------- staff ----

type memStaffStore struct {
	state *memoryState
}

func (s *memStaffStore) List(ctx context.Context) ([]models.Staff, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]models.Staff, len(s.state.staff))
	copy(out, s.state.staff)
	return out, nil
}

func (s *memStaffStore) Get(ctx context.Context, id int) (models.Staff, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Staff{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, member := range s.state.staff {
		if member.StaffID == id {
			return member, nil
		}
	}
	return models.Staff{}, ErrNotFound
}

func (s *memStaffStore) Create(ctx context.Context, member models.Staff) (models.Staff, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Staff{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	maxID := 0
	for _, existing := range s.state.staff {
		if existing.StaffID > maxID {
			maxID = existing.StaffID
		}
	}
	member.StaffID = maxID + 1
	s.state.staff = append(s.state.staff, member)
	return member, nil
}

func (s *memStaffStore) Update(ctx context.Context, id int, upd StaffUpdate) (models.Staff, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Staff{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.staff {
		if s.state.staff[i].StaffID != id {
			continue
		}
		if upd.Name != nil {
			s.state.staff[i].Name = *upd.Name
		}
		if upd.Role != nil {
			s.state.staff[i].Role = *upd.Role
		}
		if upd.DailyRate != nil {
			s.state.staff[i].DailyRate = *upd.DailyRate
		}
		return s.state.staff[i], nil
	}
	return models.Staff{}, ErrNotFound
}

func (s *memStaffStore) Delete(ctx context.Context, id int) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.staff {
		if s.state.staff[i].StaffID == id {
			s.state.staff = append(s.state.staff[:i], s.state.staff[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ------------------------------------------------------------- projects ----

type memProjectStore struct {
	state *memoryState
}

func (s *memProjectStore) List(ctx context.Context) ([]models.Project, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]models.Project, len(s.state.projects))
	copy(out, s.state.projects)
	return out, nil
}

func (s *memProjectStore) Get(ctx context.Context, id int) (models.Project, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Project{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, project := range s.state.projects {
		if project.ProjectID == id {
			return project, nil
		}
	}
	return models.Project{}, ErrNotFound
}

func (s *memProjectStore) Create(ctx context.Context, project models.Project) (models.Project, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Project{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	maxID := 0
	for _, existing := range s.state.projects {
		if existing.ProjectID > maxID {
			maxID = existing.ProjectID
		}
	}
	project.ProjectID = maxID + 1
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	s.state.projects = append(s.state.projects, project)
	return project, nil
}

func (s *memProjectStore) Update(ctx context.Context, id int, upd ProjectUpdate) (models.Project, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Project{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.projects {
		if s.state.projects[i].ProjectID != id {
			continue
		}
		if upd.Name != nil {
			s.state.projects[i].Name = *upd.Name
		}
		if upd.Description != nil {
			s.state.projects[i].Description = *upd.Description
		}
		if upd.Status != nil {
			s.state.projects[i].Status = *upd.Status
		}
		if upd.Color != nil {
			s.state.projects[i].Color = *upd.Color
		}
		return s.state.projects[i], nil
	}
	return models.Project{}, ErrNotFound
}

func (s *memProjectStore) Delete(ctx context.Context, id int) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.projects {
		if s.state.projects[i].ProjectID == id {
			s.state.projects = append(s.state.projects[:i], s.state.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ------------------------------------------------------------ schedules ----

type memScheduleStore struct {
	state *memoryState
}

func (s *memScheduleStore) List(ctx context.Context) ([]models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]models.Schedule, len(s.state.schedules))
	copy(out, s.state.schedules)
	return out, nil
}

func (s *memScheduleStore) Get(ctx context.Context, id int) (models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Schedule{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, row := range s.state.schedules {
		if row.ScheduleID == id {
			return row, nil
		}
	}
	return models.Schedule{}, ErrNotFound
}

func (s *memScheduleStore) ListByDate(ctx context.Context, date time.Time) ([]models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.rowsOnLocked(date), nil
}

func (s *memScheduleStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	// YYYY-MM-DD strings order the same way the dates do.
	from, to := utils.FormatDate(start), utils.FormatDate(end)
	var out []models.Schedule
	for _, row := range s.state.schedules {
		day := utils.FormatDate(row.Date)
		if day >= from && day <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *memScheduleStore) Create(ctx context.Context, row models.Schedule) (models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Schedule{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.createLocked(row), nil
}

func (s *memScheduleStore) CreateBatch(ctx context.Context, rows []models.Schedule) ([]models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]models.Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.createLocked(row))
	}
	return out, nil
}

func (s *memScheduleStore) Update(ctx context.Context, id int, upd ScheduleUpdate) (models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.Schedule{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.schedules {
		if s.state.schedules[i].ScheduleID != id {
			continue
		}
		if upd.Date != nil {
			s.state.schedules[i].Date = utils.DateOnly(*upd.Date)
		}
		if upd.StaffID != nil {
			s.state.schedules[i].StaffID = *upd.StaffID
		}
		if upd.ProjectID != nil {
			s.state.schedules[i].ProjectID = *upd.ProjectID
		}
		s.state.schedules[i].UpdatedAt = time.Now()
		return s.state.schedules[i], nil
	}
	return models.Schedule{}, ErrNotFound
}

func (s *memScheduleStore) Delete(ctx context.Context, id int) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.schedules {
		if s.state.schedules[i].ScheduleID == id {
			s.state.schedules = append(s.state.schedules[:i], s.state.schedules[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memScheduleStore) DeleteByDate(ctx context.Context, date time.Time) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.deleteDateLocked(date)
	return nil
}

func (s *memScheduleStore) ReplaceDay(ctx context.Context, date time.Time, rows []models.Schedule) ([]models.Schedule, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.deleteDateLocked(date)
	out := make([]models.Schedule, 0, len(rows))
	for _, row := range rows {
		row.Date = utils.DateOnly(date)
		out = append(out, s.createLocked(row))
	}
	return out, nil
}

func (s *memScheduleStore) createLocked(row models.Schedule) models.Schedule {
	maxID := 0
	for _, existing := range s.state.schedules {
		if existing.ScheduleID > maxID {
			maxID = existing.ScheduleID
		}
	}
	row.ScheduleID = maxID + 1
	row.Date = utils.DateOnly(row.Date)
	now := time.Now()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	s.state.schedules = append(s.state.schedules, row)
	return row
}

func (s *memScheduleStore) rowsOnLocked(date time.Time) []models.Schedule {
	day := utils.FormatDate(date)
	var out []models.Schedule
	for _, row := range s.state.schedules {
		if utils.FormatDate(row.Date) == day {
			out = append(out, row)
		}
	}
	return out
}

func (s *memScheduleStore) deleteDateLocked(date time.Time) {
	day := utils.FormatDate(date)
	kept := s.state.schedules[:0]
	for _, row := range s.state.schedules {
		if utils.FormatDate(row.Date) != day {
			kept = append(kept, row)
		}
	}
	s.state.schedules = kept
}

// ------------------------------------------------------------ job costs ----

type memJobCostStore struct {
	state *memoryState
}

func (s *memJobCostStore) List(ctx context.Context) ([]models.JobCost, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]models.JobCost, len(s.state.jobCosts))
	copy(out, s.state.jobCosts)
	return out, nil
}

func (s *memJobCostStore) Get(ctx context.Context, id int) (models.JobCost, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.JobCost{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, cost := range s.state.jobCosts {
		if cost.JobCostID == id {
			return cost, nil
		}
	}
	return models.JobCost{}, ErrNotFound
}

func (s *memJobCostStore) Create(ctx context.Context, cost models.JobCost) (models.JobCost, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.JobCost{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	maxID := 0
	for _, existing := range s.state.jobCosts {
		if existing.JobCostID > maxID {
			maxID = existing.JobCostID
		}
	}
	cost.JobCostID = maxID + 1
	cost.Date = utils.DateOnly(cost.Date)
	s.state.jobCosts = append(s.state.jobCosts, cost)
	return cost, nil
}

func (s *memJobCostStore) Update(ctx context.Context, id int, upd JobCostUpdate) (models.JobCost, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.JobCost{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.jobCosts {
		if s.state.jobCosts[i].JobCostID != id {
			continue
		}
		if upd.ProjectID != nil {
			s.state.jobCosts[i].ProjectID = *upd.ProjectID
		}
		if upd.Cost != nil {
			s.state.jobCosts[i].Cost = *upd.Cost
		}
		if upd.Date != nil {
			s.state.jobCosts[i].Date = utils.DateOnly(*upd.Date)
		}
		if upd.Details != nil {
			s.state.jobCosts[i].Details = *upd.Details
		}
		return s.state.jobCosts[i], nil
	}
	return models.JobCost{}, ErrNotFound
}

func (s *memJobCostStore) Delete(ctx context.Context, id int) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.jobCosts {
		if s.state.jobCosts[i].JobCostID == id {
			s.state.jobCosts = append(s.state.jobCosts[:i], s.state.jobCosts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ------------------------------------------------------------- workdays ----

type memWorkdayStore struct {
	state *memoryState
}

func (s *memWorkdayStore) List(ctx context.Context) ([]models.StaffWorkday, error) {
	if err := s.state.delay(ctx); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	out := make([]models.StaffWorkday, len(s.state.workdays))
	copy(out, s.state.workdays)
	return out, nil
}

func (s *memWorkdayStore) Get(ctx context.Context, id int) (models.StaffWorkday, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.StaffWorkday{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, workday := range s.state.workdays {
		if workday.WorkdayID == id {
			return workday, nil
		}
	}
	return models.StaffWorkday{}, ErrNotFound
}

func (s *memWorkdayStore) Create(ctx context.Context, workday models.StaffWorkday) (models.StaffWorkday, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.StaffWorkday{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	maxID := 0
	for _, existing := range s.state.workdays {
		if existing.WorkdayID > maxID {
			maxID = existing.WorkdayID
		}
	}
	workday.WorkdayID = maxID + 1
	workday.Date = utils.DateOnly(workday.Date)
	s.state.workdays = append(s.state.workdays, workday)
	return workday, nil
}

func (s *memWorkdayStore) Update(ctx context.Context, id int, upd StaffWorkdayUpdate) (models.StaffWorkday, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.StaffWorkday{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.workdays {
		if s.state.workdays[i].WorkdayID != id {
			continue
		}
		if upd.StaffID != nil {
			s.state.workdays[i].StaffID = *upd.StaffID
		}
		if upd.Date != nil {
			s.state.workdays[i].Date = utils.DateOnly(*upd.Date)
		}
		if upd.NumberOfDaysWorked != nil {
			s.state.workdays[i].NumberOfDaysWorked = *upd.NumberOfDaysWorked
		}
		if upd.Details != nil {
			s.state.workdays[i].Details = *upd.Details
		}
		return s.state.workdays[i], nil
	}
	return models.StaffWorkday{}, ErrNotFound
}

func (s *memWorkdayStore) Delete(ctx context.Context, id int) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.workdays {
		if s.state.workdays[i].WorkdayID == id {
			s.state.workdays = append(s.state.workdays[:i], s.state.workdays[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---------------------------------------------------------------- users ----

type memUserStore struct {
	state *memoryState
}

func (s *memUserStore) Get(ctx context.Context, id int) (models.User, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.User{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, user := range s.state.users {
		if user.UserID == id {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *memUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.User{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, user := range s.state.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *memUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.User{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	maxID := 0
	for _, existing := range s.state.users {
		if existing.UserID > maxID {
			maxID = existing.UserID
		}
	}
	user.UserID = maxID + 1
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.state.users = append(s.state.users, user)
	return user, nil
}

func (s *memUserStore) CreateSession(ctx context.Context, session models.UserSession) (models.UserSession, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.UserSession{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	maxID := 0
	for _, existing := range s.state.sessions {
		if existing.SessionID > maxID {
			maxID = existing.SessionID
		}
	}
	session.SessionID = maxID + 1
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	s.state.sessions = append(s.state.sessions, session)
	return session, nil
}

func (s *memUserStore) GetSession(ctx context.Context, token string) (models.UserSession, error) {
	if err := s.state.delay(ctx); err != nil {
		return models.UserSession{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for _, session := range s.state.sessions {
		if session.Token == token {
			return session, nil
		}
	}
	return models.UserSession{}, ErrNotFound
}

func (s *memUserStore) DeleteSession(ctx context.Context, token string) error {
	if err := s.state.delay(ctx); err != nil {
		return err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.sessions {
		if s.state.sessions[i].Token == token {
			s.state.sessions = append(s.state.sessions[:i], s.state.sessions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

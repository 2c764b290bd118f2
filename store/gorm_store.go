package store

import (
	"context"
	"errors"
	"time"

	"staff-scheduler-api/models"
	"staff-scheduler-api/utils"

	"gorm.io/gorm"
)

// NewGormStore wires every repository to a shared GORM connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Staff:     &gormStaffStore{db: db},
		Projects:  &gormProjectStore{db: db},
		Schedules: &gormScheduleStore{db: db},
		JobCosts:  &gormJobCostStore{db: db},
		Workdays:  &gormWorkdayStore{db: db},
		Users:     &gormUserStore{db: db},
	}
}

func translateGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------------------------------------------------------------- staff ----

type gormStaffStore struct {
	db *gorm.DB
}

func (s *gormStaffStore) List(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	err := s.db.WithContext(ctx).Order("staff_id ASC").Find(&staff).Error
	return staff, err
}

func (s *gormStaffStore) Get(ctx context.Context, id int) (models.Staff, error) {
	var member models.Staff
	if err := s.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return models.Staff{}, translateGormErr(err)
	}
	return member, nil
}

func (s *gormStaffStore) Create(ctx context.Context, member models.Staff) (models.Staff, error) {
	member.StaffID = 0
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return models.Staff{}, err
	}
	return member, nil
}

func (s *gormStaffStore) Update(ctx context.Context, id int, upd StaffUpdate) (models.Staff, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Role != nil {
		updates["role"] = *upd.Role
	}
	if upd.DailyRate != nil {
		updates["daily_rate"] = *upd.DailyRate
	}

	var member models.Staff
	if err := s.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return models.Staff{}, translateGormErr(err)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&member).Updates(updates).Error; err != nil {
			return models.Staff{}, err
		}
	}
	return member, nil
}

func (s *gormStaffStore) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Staff{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ------------------------------------------------------------- projects ----

type gormProjectStore struct {
	db *gorm.DB
}

func (s *gormProjectStore) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).Order("project_id ASC").Find(&projects).Error
	return projects, err
}

func (s *gormProjectStore) Get(ctx context.Context, id int) (models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return models.Project{}, translateGormErr(err)
	}
	return project, nil
}

func (s *gormProjectStore) Create(ctx context.Context, project models.Project) (models.Project, error) {
	project.ProjectID = 0
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *gormProjectStore) Update(ctx context.Context, id int, upd ProjectUpdate) (models.Project, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.Color != nil {
		updates["color"] = *upd.Color
	}

	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return models.Project{}, translateGormErr(err)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&project).Updates(updates).Error; err != nil {
			return models.Project{}, err
		}
	}
	return project, nil
}

func (s *gormProjectStore) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ------------------------------------------------------------ schedules ----

type gormScheduleStore struct {
	db *gorm.DB
}

func (s *gormScheduleStore) List(ctx context.Context) ([]models.Schedule, error) {
	var rows []models.Schedule
	err := s.db.WithContext(ctx).Order("date ASC, schedule_id ASC").Find(&rows).Error
	return rows, err
}

func (s *gormScheduleStore) Get(ctx context.Context, id int) (models.Schedule, error) {
	var row models.Schedule
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.Schedule{}, translateGormErr(err)
	}
	return row, nil
}

func (s *gormScheduleStore) ListByDate(ctx context.Context, date time.Time) ([]models.Schedule, error) {
	var rows []models.Schedule
	err := s.db.WithContext(ctx).
		Where("date = ?", utils.DateOnly(date)).
		Order("schedule_id ASC").
		Find(&rows).Error
	return rows, err
}

func (s *gormScheduleStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Schedule, error) {
	var rows []models.Schedule
	err := s.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", utils.DateOnly(start), utils.DateOnly(end)).
		Order("date ASC, schedule_id ASC").
		Find(&rows).Error
	return rows, err
}

func (s *gormScheduleStore) Create(ctx context.Context, row models.Schedule) (models.Schedule, error) {
	row.ScheduleID = 0
	row.Date = utils.DateOnly(row.Date)
	now := time.Now()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Schedule{}, err
	}
	return row, nil
}

func (s *gormScheduleStore) CreateBatch(ctx context.Context, rows []models.Schedule) ([]models.Schedule, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	now := time.Now()
	for i := range rows {
		rows[i].ScheduleID = 0
		rows[i].Date = utils.DateOnly(rows[i].Date)
		if rows[i].CreatedAt.IsZero() {
			rows[i].CreatedAt = now
		}
		rows[i].UpdatedAt = now
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormScheduleStore) Update(ctx context.Context, id int, upd ScheduleUpdate) (models.Schedule, error) {
	updates := map[string]interface{}{}
	if upd.Date != nil {
		updates["date"] = utils.DateOnly(*upd.Date)
	}
	if upd.StaffID != nil {
		updates["staff_id"] = *upd.StaffID
	}
	if upd.ProjectID != nil {
		updates["project_id"] = *upd.ProjectID
	}

	var row models.Schedule
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return models.Schedule{}, translateGormErr(err)
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.db.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
			return models.Schedule{}, err
		}
	}
	return row, nil
}

func (s *gormScheduleStore) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.Schedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormScheduleStore) DeleteByDate(ctx context.Context, date time.Time) error {
	return s.db.WithContext(ctx).
		Where("date = ?", utils.DateOnly(date)).
		Delete(&models.Schedule{}).Error
}

func (s *gormScheduleStore) ReplaceDay(ctx context.Context, date time.Time, rows []models.Schedule) ([]models.Schedule, error) {
	day := utils.DateOnly(date)
	now := time.Now()
	for i := range rows {
		rows[i].ScheduleID = 0
		rows[i].Date = day
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", day).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ------------------------------------------------------------ job costs ----

type gormJobCostStore struct {
	db *gorm.DB
}

func (s *gormJobCostStore) List(ctx context.Context) ([]models.JobCost, error) {
	var costs []models.JobCost
	err := s.db.WithContext(ctx).Order("date ASC, job_cost_id ASC").Find(&costs).Error
	return costs, err
}

func (s *gormJobCostStore) Get(ctx context.Context, id int) (models.JobCost, error) {
	var cost models.JobCost
	if err := s.db.WithContext(ctx).First(&cost, id).Error; err != nil {
		return models.JobCost{}, translateGormErr(err)
	}
	return cost, nil
}

func (s *gormJobCostStore) Create(ctx context.Context, cost models.JobCost) (models.JobCost, error) {
	cost.JobCostID = 0
	cost.Date = utils.DateOnly(cost.Date)
	if err := s.db.WithContext(ctx).Create(&cost).Error; err != nil {
		return models.JobCost{}, err
	}
	return cost, nil
}

func (s *gormJobCostStore) Update(ctx context.Context, id int, upd JobCostUpdate) (models.JobCost, error) {
	updates := map[string]interface{}{}
	if upd.ProjectID != nil {
		updates["project_id"] = *upd.ProjectID
	}
	if upd.Cost != nil {
		updates["cost"] = *upd.Cost
	}
	if upd.Date != nil {
		updates["date"] = utils.DateOnly(*upd.Date)
	}
	if upd.Details != nil {
		updates["details"] = *upd.Details
	}

	var cost models.JobCost
	if err := s.db.WithContext(ctx).First(&cost, id).Error; err != nil {
		return models.JobCost{}, translateGormErr(err)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&cost).Updates(updates).Error; err != nil {
			return models.JobCost{}, err
		}
	}
	return cost, nil
}

func (s *gormJobCostStore) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.JobCost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ------------------------------------------------------------- workdays ----

type gormWorkdayStore struct {
	db *gorm.DB
}

func (s *gormWorkdayStore) List(ctx context.Context) ([]models.StaffWorkday, error) {
	var workdays []models.StaffWorkday
	err := s.db.WithContext(ctx).Order("date ASC, workday_id ASC").Find(&workdays).Error
	return workdays, err
}

func (s *gormWorkdayStore) Get(ctx context.Context, id int) (models.StaffWorkday, error) {
	var workday models.StaffWorkday
	if err := s.db.WithContext(ctx).First(&workday, id).Error; err != nil {
		return models.StaffWorkday{}, translateGormErr(err)
	}
	return workday, nil
}

func (s *gormWorkdayStore) Create(ctx context.Context, workday models.StaffWorkday) (models.StaffWorkday, error) {
	workday.WorkdayID = 0
	workday.Date = utils.DateOnly(workday.Date)
	if err := s.db.WithContext(ctx).Create(&workday).Error; err != nil {
		return models.StaffWorkday{}, err
	}
	return workday, nil
}

func (s *gormWorkdayStore) Update(ctx context.Context, id int, upd StaffWorkdayUpdate) (models.StaffWorkday, error) {
	updates := map[string]interface{}{}
	if upd.StaffID != nil {
		updates["staff_id"] = *upd.StaffID
	}
	if upd.Date != nil {
		updates["date"] = utils.DateOnly(*upd.Date)
	}
	if upd.NumberOfDaysWorked != nil {
		updates["number_of_days_worked"] = *upd.NumberOfDaysWorked
	}
	if upd.Details != nil {
		updates["details"] = *upd.Details
	}

	var workday models.StaffWorkday
	if err := s.db.WithContext(ctx).First(&workday, id).Error; err != nil {
		return models.StaffWorkday{}, translateGormErr(err)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&workday).Updates(updates).Error; err != nil {
			return models.StaffWorkday{}, err
		}
	}
	return workday, nil
}

func (s *gormWorkdayStore) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&models.StaffWorkday{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------- users ----

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Get(ctx context.Context, id int) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, translateGormErr(err)
	}
	return user, nil
}

func (s *gormUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translateGormErr(err)
	}
	return user, nil
}

func (s *gormUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	user.UserID = 0
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *gormUserStore) CreateSession(ctx context.Context, session models.UserSession) (models.UserSession, error) {
	session.SessionID = 0
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return models.UserSession{}, err
	}
	return session, nil
}

func (s *gormUserStore) GetSession(ctx context.Context, token string) (models.UserSession, error) {
	var session models.UserSession
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return models.UserSession{}, translateGormErr(err)
	}
	return session, nil
}

func (s *gormUserStore) DeleteSession(ctx context.Context, token string) error {
	res := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.UserSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

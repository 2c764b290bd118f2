package models

import "time"

// Schedule represents the schedules table. One row assigns one staff member
// to one project on one calendar day. Staff and project references are not
// enforced with foreign keys: deleting a staff member leaves its schedule
// rows behind with a dangling reference.
type Schedule struct {
	ScheduleID int       `gorm:"primaryKey;column:schedule_id" json:"schedule_id"`
	Date       time.Time `gorm:"column:date" json:"date"`
	StaffID    int       `gorm:"column:staff_id" json:"staff_id"`
	ProjectID  int       `gorm:"column:project_id" json:"project_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name for Schedule
func (Schedule) TableName() string {
	return "schedules"
}

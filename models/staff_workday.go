package models

import "time"

// StaffWorkday represents the staff_workdays table. Days actually worked by
// a staff member, independent of the planned schedule. Supports fractional
// days (half days etc.).
type StaffWorkday struct {
	WorkdayID          int       `gorm:"primaryKey;column:workday_id" json:"workday_id"`
	StaffID            int       `gorm:"column:staff_id" json:"staff_id"`
	Date               time.Time `gorm:"column:date" json:"date"`
	NumberOfDaysWorked float64   `gorm:"column:number_of_days_worked" json:"number_of_days_worked"`
	Details            string    `gorm:"column:details" json:"details"`
}

// TableName overrides the table name for StaffWorkday
func (StaffWorkday) TableName() string {
	return "staff_workdays"
}

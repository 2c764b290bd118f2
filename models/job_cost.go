package models

import "time"

// JobCost represents the job_costs table. A direct, non-staff expense
// attributed to a project on a date.
type JobCost struct {
	JobCostID int       `gorm:"primaryKey;column:job_cost_id" json:"job_cost_id"`
	ProjectID int       `gorm:"column:project_id" json:"project_id"`
	Cost      float64   `gorm:"column:cost" json:"cost"`
	Date      time.Time `gorm:"column:date" json:"date"`
	Details   string    `gorm:"column:details" json:"details"`
}

// TableName overrides the table name for JobCost
func (JobCost) TableName() string {
	return "job_costs"
}

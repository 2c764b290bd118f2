package models

import "time"

// Project status values
const (
	ProjectStatusActive    = "Active"
	ProjectStatusOnHold    = "On-Hold"
	ProjectStatusCompleted = "Completed"
)

// Project represents the projects table
type Project struct {
	ProjectID   int       `gorm:"primaryKey;column:project_id" json:"project_id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Status      string    `gorm:"column:status" json:"status"`
	Color       string    `gorm:"column:color" json:"color"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsValidProjectStatus reports whether s is one of the allowed status values.
func IsValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

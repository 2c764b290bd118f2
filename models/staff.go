package models

// Staff represents the staff table
type Staff struct {
	StaffID   int     `gorm:"primaryKey;column:staff_id" json:"staff_id"`
	Name      string  `gorm:"column:name" json:"name"`
	Role      string  `gorm:"column:role" json:"role"`
	DailyRate float64 `gorm:"column:daily_rate" json:"daily_rate"`
}

// TableName overrides the table name for Staff
func (Staff) TableName() string {
	return "staff"
}

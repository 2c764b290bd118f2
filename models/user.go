package models

import "time"

// User roles
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents the users table
type User struct {
	UserID       int       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email        string    `gorm:"column:email" json:"email"`
	Name         string    `gorm:"column:name" json:"name"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Role         string    `gorm:"column:role" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSession represents the user_sessions table. One row per issued
// refresh token.
type UserSession struct {
	SessionID int       `gorm:"primaryKey;column:session_id" json:"session_id"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	Token     string    `gorm:"column:token" json:"token"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name for UserSession
func (UserSession) TableName() string {
	return "user_sessions"
}

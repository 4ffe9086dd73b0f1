package models

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"size:120;not null"`
	Role         UserRole  `json:"role" gorm:"size:20;not null"`
	PasswordHash string    `json:"-" gorm:"size:100"` // empty when the account has no login
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

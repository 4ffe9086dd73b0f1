package models

import "time"

type Teacher struct {
	ID         uint      `gorm:"primaryKey"                   json:"id"`
	UserID     uint      `gorm:"not null;index"               json:"user_id"`
	EmployeeID string    `gorm:"size:20;uniqueIndex;not null" json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

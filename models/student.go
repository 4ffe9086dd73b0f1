package models

import "time"

type Student struct {
	ID        uint      `gorm:"primaryKey"                   json:"id"`
	UserID    uint      `gorm:"not null;index"               json:"user_id"`
	StudentID string    `gorm:"size:20;uniqueIndex;not null" json:"student_id"` // external student code
	ClassID   uint      `gorm:"not null;index"               json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

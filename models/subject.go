package models

import "time"

type Subject struct {
	ID          uint      `gorm:"primaryKey"                   json:"id"`
	Name        string    `gorm:"size:120;not null"            json:"name"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Description *string   `gorm:"type:text"                    json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

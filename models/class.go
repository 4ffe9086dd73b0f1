package models

import "time"

type Class struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Grade     string    `gorm:"size:20;not null"  json:"grade"`
	Section   *string   `gorm:"size:20"           json:"section"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

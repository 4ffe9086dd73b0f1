package models

import "time"

// TeacherSubject links a teacher to a subject taught in a class.
// Assignments are create/read only; there is no update path.
type TeacherSubject struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	TeacherID uint      `gorm:"not null;index" json:"teacher_id"`
	SubjectID uint      `gorm:"not null;index" json:"subject_id"`
	ClassID   uint      `gorm:"not null;index" json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

type AttendanceStatus string

const (
	StatusPresent        AttendanceStatus = "present"
	StatusSick           AttendanceStatus = "sick"
	StatusPermittedLeave AttendanceStatus = "permitted_leave"
	StatusAbsent         AttendanceStatus = "absent"
	StatusLate           AttendanceStatus = "late"
)

// DateFormat is the calendar-day layout used everywhere attendance dates are
// stored or compared. Time-of-day never survives past the HTTP boundary.
const DateFormat = "2006-01-02"

// FormatDate truncates t to a calendar day string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Attendance is one (student, subject, class, date) fact. The composite
// unique index backs the duplicate check in the ledger: a concurrent
// read-then-insert race still ends in exactly one row.
type Attendance struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	StudentID uint             `gorm:"not null;uniqueIndex:idx_attendance_fact" json:"student_id"`
	SubjectID uint             `gorm:"not null;uniqueIndex:idx_attendance_fact" json:"subject_id"`
	ClassID   uint             `gorm:"not null;uniqueIndex:idx_attendance_fact" json:"class_id"`
	Date      string           `gorm:"size:10;not null;uniqueIndex:idx_attendance_fact" json:"date"` // YYYY-MM-DD
	Status    AttendanceStatus `gorm:"size:20;not null" json:"status"`
	Notes     *string          `gorm:"type:text" json:"notes"`
	MarkedBy  uint             `gorm:"not null" json:"marked_by"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Package apperrors holds the typed failures raised by the service layer.
// Handlers translate them to HTTP codes in exactly one place.
package apperrors

import "fmt"

// NotFoundError reports a missing referenced entity, e.g. a student id that
// does not exist. Entity is the lowercase singular name ("student", "subject").
type NotFoundError struct {
	Entity string
	ID     uint
}

func NewNotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// DuplicateKeyError reports a uniqueness violation on an entity column
// (users.email, students.student_id, teachers.employee_id, subjects.code).
type DuplicateKeyError struct {
	Entity string
	Field  string
}

func NewDuplicateKey(entity, field string) *DuplicateKeyError {
	return &DuplicateKeyError{Entity: entity, Field: field}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

// DuplicateAttendanceError reports an attempt to mark attendance twice for the
// same (student, subject, class, date) fact.
type DuplicateAttendanceError struct {
	StudentID uint
	Date      string
}

func (e *DuplicateAttendanceError) Error() string {
	return fmt.Sprintf("attendance already marked for student %d on %s", e.StudentID, e.Date)
}

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-attendance/apperrors"
	"school-attendance/models"
)

// AttendanceService is the single writer of attendance facts.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

type MarkAttendanceInput struct {
	StudentID uint                    `json:"student_id" validate:"required"`
	SubjectID uint                    `json:"subject_id" validate:"required"`
	ClassID   uint                    `json:"class_id" validate:"required"`
	Date      string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present sick permitted_leave absent late"`
	Notes     *string                 `json:"notes"`
	MarkedBy  uint                    `json:"marked_by" validate:"required"`
}

// OptionalString distinguishes "field absent" from "field set to null" in a
// JSON body, so updates can clear notes without touching status.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type UpdateAttendanceInput struct {
	Status    *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=present sick permitted_leave absent late"`
	Notes     OptionalString           `json:"notes"`
	UpdatedBy uint                     `json:"updated_by" validate:"required"`
}

// Mark records a new attendance fact. References are verified in
// student, subject, class, marked-by order; the first missing one wins.
// The existence check and insert run in one transaction, and the composite
// unique index catches whatever a concurrent writer slips past the check.
func (s *AttendanceService) Mark(in MarkAttendanceInput) (*models.Attendance, error) {
	if err := checkExists(s.db, &models.Student{}, "student", in.StudentID); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.Subject{}, "subject", in.SubjectID); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.Class{}, "class", in.ClassID); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.User{}, "user", in.MarkedBy); err != nil {
		return nil, err
	}

	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	rec := models.Attendance{
		StudentID: in.StudentID,
		SubjectID: in.SubjectID,
		ClassID:   in.ClassID,
		Date:      date,
		Status:    in.Status,
		Notes:     in.Notes,
		MarkedBy:  in.MarkedBy,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Attendance
		err := tx.Where(
			"student_id = ? AND subject_id = ? AND class_id = ? AND date = ?",
			in.StudentID, in.SubjectID, in.ClassID, date,
		).First(&existing).Error
		if err == nil {
			return &apperrors.DuplicateAttendanceError{StudentID: in.StudentID, Date: date}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return createAttendance(tx, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update changes status and/or notes of an existing record. Omitted fields
// keep their value; the (student, subject, class, date) key is immutable here.
func (s *AttendanceService) Update(id uint, in UpdateAttendanceInput) (*models.Attendance, error) {
	var rec models.Attendance
	if err := s.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("attendance", id)
		}
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Notes.Set {
		updates["notes"] = in.Notes.Value
	}
	if err := s.db.Model(&rec).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ByDate lists all records for one calendar day, optionally narrowed by class
// and/or subject.
func (s *AttendanceService) ByDate(date string, classID, subjectID *uint) ([]models.Attendance, error) {
	day, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	tx := s.db.Where("date = ?", day)
	if classID != nil {
		tx = tx.Where("class_id = ?", *classID)
	}
	if subjectID != nil {
		tx = tx.Where("subject_id = ?", *subjectID)
	}

	var rows []models.Attendance
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ByStudent lists a student's records sorted ascending by date. Both range
// bounds are inclusive and independently optional.
func (s *AttendanceService) ByStudent(studentID uint, startDate, endDate *string, subjectID *uint) ([]models.Attendance, error) {
	tx := s.db.Where("student_id = ?", studentID)
	if startDate != nil {
		day, err := normalizeDate(*startDate)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("date >= ?", day)
	}
	if endDate != nil {
		day, err := normalizeDate(*endDate)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("date <= ?", day)
	}
	if subjectID != nil {
		tx = tx.Where("subject_id = ?", *subjectID)
	}

	var rows []models.Attendance
	if err := tx.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// createAttendance inserts a row, translating a unique-index conflict into the
// ledger's duplicate error. Shared with the chatbot's self-marking path, which
// skips the staff reference checks above.
func createAttendance(tx *gorm.DB, rec *models.Attendance) error {
	if err := tx.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.DuplicateAttendanceError{StudentID: rec.StudentID, Date: rec.Date}
		}
		return err
	}
	return nil
}

// normalizeDate parses and re-renders a calendar day, discarding anything
// that is not YYYY-MM-DD.
func normalizeDate(s string) (string, error) {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return models.FormatDate(t), nil
}

func checkExists(db *gorm.DB, model any, entity string, id uint) error {
	err := db.First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(entity, id)
	}
	return err
}

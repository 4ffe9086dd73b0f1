package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"school-attendance/models"
)

// ChatbotService turns a student's free-text message into at most one ledger
// write and a reply. A missing student record or an unrecognized message is a
// conversational outcome, not an error; write failures still propagate.
type ChatbotService struct {
	db         *gorm.DB
	attendance *AttendanceService
}

func NewChatbotService(db *gorm.DB) *ChatbotService {
	return &ChatbotService{db: db, attendance: NewAttendanceService(db)}
}

type ChatbotInput struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id"`
}

type ChatbotResponse struct {
	Message          string `json:"message"`
	ActionRequired   bool   `json:"action_required"`
	AttendanceMarked bool   `json:"attendance_marked"`
	SessionID        string `json:"session_id"`
}

func (s *ChatbotService) Process(in ChatbotInput) (*ChatbotResponse, error) {
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session_%d_%d", time.Now().UnixMilli(), in.StudentID)
	}

	var student models.Student
	if err := s.db.First(&student, in.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ChatbotResponse{
				Message:   "I couldn't find your student record. Please contact your teacher for assistance.",
				SessionID: sessionID,
			}, nil
		}
		return nil, err
	}

	status, ok := ClassifyMessage(in.Message)
	if !ok {
		return &ChatbotResponse{
			Message:        "I didn't understand your attendance status. Please tell me if you're: Present, Sick, Late, Absent, or have Permitted Leave.",
			ActionRequired: true,
			SessionID:      sessionID,
		}, nil
	}

	// Target the lowest-id subject rather than a scheduled one. A schedule
	// model does not exist; the daily fact still lands on a real subject.
	var subject models.Subject
	if err := s.db.Order("id ASC").First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ChatbotResponse{
				Message:   "No subjects found. Please contact your teacher to set up subjects first.",
				SessionID: sessionID,
			}, nil
		}
		return nil, err
	}

	today := models.FormatDate(time.Now())

	var existing models.Attendance
	err := s.db.Where(
		"student_id = ? AND subject_id = ? AND class_id = ? AND date = ?",
		student.ID, subject.ID, student.ClassID, today,
	).First(&existing).Error

	var reply string
	switch {
	case err == nil:
		notes := "Updated via chatbot: " + in.Message
		_, uerr := s.attendance.Update(existing.ID, UpdateAttendanceInput{
			Status:    &status,
			Notes:     OptionalString{Set: true, Value: &notes},
			UpdatedBy: student.UserID,
		})
		if uerr != nil {
			return nil, uerr
		}
		reply = fmt.Sprintf("Your attendance has been updated to %q for today. Thank you!", status)

	case errors.Is(err, gorm.ErrRecordNotFound):
		notes := "Marked via chatbot: " + in.Message
		rec := models.Attendance{
			StudentID: student.ID,
			SubjectID: subject.ID,
			ClassID:   student.ClassID,
			Date:      today,
			Status:    status,
			Notes:     &notes,
			// Self-marking: no staff user is present, so the record is
			// attributed to the student's own id.
			MarkedBy: student.ID,
		}
		if cerr := createAttendance(s.db, &rec); cerr != nil {
			return nil, cerr
		}
		reply = fmt.Sprintf("Your attendance has been marked as %q for today. Thank you!", status)

	default:
		return nil, err
	}

	switch status {
	case models.StatusSick:
		reply += " I hope you feel better soon. Please rest and take care of yourself."
	case models.StatusLate:
		reply += " Please try to arrive on time for future classes."
	case models.StatusPresent:
		reply += " Great to have you in class today!"
	}

	return &ChatbotResponse{
		Message:          reply,
		AttendanceMarked: true,
		SessionID:        sessionID,
	}, nil
}

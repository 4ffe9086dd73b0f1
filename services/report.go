package services

import (
	"math"

	"school-attendance/models"
)

type ReportInput struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	ClassID   *uint  `json:"class_id"`
	SubjectID *uint  `json:"subject_id"`
	StudentID *uint  `json:"student_id"`
	// Accepted for API compatibility; the aggregation does not branch on it.
	ReportType string `json:"report_type" validate:"required,oneof=daily weekly monthly per_subject per_student"`
}

type ReportSummary struct {
	// TotalDays counts matched rows, one per day-subject fact, not distinct
	// calendar days. The name is kept for API compatibility.
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LateDays             int     `json:"late_days"`
	SickDays             int     `json:"sick_days"`
	PermittedLeaveDays   int     `json:"permitted_leave_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type ReportDetail struct {
	Date    string                  `json:"date"`
	Status  models.AttendanceStatus `json:"status"`
	Subject string                  `json:"subject"`
	Notes   *string                 `json:"notes,omitempty"`
}

type AttendanceReport struct {
	Summary ReportSummary  `json:"summary"`
	Details []ReportDetail `json:"details"`
}

// BuildReport aggregates attendance rows in [start, end] (inclusive),
// narrowed by the optional filters. Present and late both count toward the
// attendance percentage; sick, absent and permitted leave do not.
func (s *AttendanceService) BuildReport(in ReportInput) (*AttendanceReport, error) {
	start, err := normalizeDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := normalizeDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	tx := s.db.Model(&models.Attendance{}).
		Select("attendances.date, attendances.status, attendances.notes, subjects.name AS subject").
		Joins("JOIN subjects ON subjects.id = attendances.subject_id").
		Where("attendances.date >= ? AND attendances.date <= ?", start, end)
	if in.ClassID != nil {
		tx = tx.Where("attendances.class_id = ?", *in.ClassID)
	}
	if in.SubjectID != nil {
		tx = tx.Where("attendances.subject_id = ?", *in.SubjectID)
	}
	if in.StudentID != nil {
		tx = tx.Where("attendances.student_id = ?", *in.StudentID)
	}

	var details []ReportDetail
	if err := tx.Order("attendances.date ASC, attendances.id ASC").Scan(&details).Error; err != nil {
		return nil, err
	}

	report := AttendanceReport{Details: details}
	report.Summary.TotalDays = len(details)
	for _, d := range details {
		switch d.Status {
		case models.StatusPresent:
			report.Summary.PresentDays++
		case models.StatusAbsent:
			report.Summary.AbsentDays++
		case models.StatusLate:
			report.Summary.LateDays++
		case models.StatusSick:
			report.Summary.SickDays++
		case models.StatusPermittedLeave:
			report.Summary.PermittedLeaveDays++
		}
	}
	if report.Summary.TotalDays > 0 {
		attended := float64(report.Summary.PresentDays + report.Summary.LateDays)
		pct := attended / float64(report.Summary.TotalDays) * 100
		report.Summary.AttendancePercentage = math.Round(pct*100) / 100
	}
	if report.Details == nil {
		report.Details = []ReportDetail{}
	}
	return &report, nil
}

package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/models"
	"school-attendance/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
}

func NewAttendanceHandler() *AttendanceHandler {
	return &AttendanceHandler{attendance: services.NewAttendanceService(database.DB)}
}

// POST /teacher/attendance/mark
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req services.MarkAttendanceInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	rec, err := h.attendance.Mark(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /teacher/attendance/:id
func (h *AttendanceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req services.UpdateAttendanceInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	rec, err := h.attendance.Update(id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /teacher/attendance?date=YYYY-MM-DD&class_id=&subject_id=
func (h *AttendanceHandler) ByDate(c echo.Context) error {
	date := c.QueryParam("date")
	if err := requireDate(date, "date"); err != nil {
		return err
	}
	classID, err := queryUint(c, "class_id")
	if err != nil {
		return err
	}
	subjectID, err := queryUint(c, "subject_id")
	if err != nil {
		return err
	}
	rows, err := h.attendance.ByDate(date, classID, subjectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /teacher/students/:id/attendance?start_date=&end_date=&subject_id=
func (h *AttendanceHandler) ByStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	start := queryStr(c, "start_date")
	if start != nil {
		if err := requireDate(*start, "start_date"); err != nil {
			return err
		}
	}
	end := queryStr(c, "end_date")
	if end != nil {
		if err := requireDate(*end, "end_date"); err != nil {
			return err
		}
	}
	subjectID, err := queryUint(c, "subject_id")
	if err != nil {
		return err
	}
	rows, err := h.attendance.ByStudent(id, start, end, subjectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /teacher/attendance/report?start_date=&end_date=&class_id=&subject_id=&student_id=&report_type=
func (h *AttendanceHandler) Report(c echo.Context) error {
	in := services.ReportInput{
		StartDate:  c.QueryParam("start_date"),
		EndDate:    c.QueryParam("end_date"),
		ReportType: c.QueryParam("report_type"),
	}
	var err error
	if in.ClassID, err = queryUint(c, "class_id"); err != nil {
		return err
	}
	if in.SubjectID, err = queryUint(c, "subject_id"); err != nil {
		return err
	}
	if in.StudentID, err = queryUint(c, "student_id"); err != nil {
		return err
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	report, err := h.attendance.BuildReport(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func requireDate(s, name string) error {
	if _, err := time.Parse(models.DateFormat, s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			map[string]any{"error": name + " must be YYYY-MM-DD"})
	}
	return nil
}

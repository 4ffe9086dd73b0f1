package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/models"
	"school-attendance/services"
)

type DashboardHandler struct {
	attendance *services.AttendanceService
}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{attendance: services.NewAttendanceService(database.DB)}
}

// GET /teacher/dashboard/daily?date=&class_id=
// One day's rollup for the teacher dashboard; date defaults to today.
func (h *DashboardHandler) Daily(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = models.FormatDate(time.Now())
	} else if err := requireDate(date, "date"); err != nil {
		return err
	}
	classID, err := queryUint(c, "class_id")
	if err != nil {
		return err
	}

	rows, err := h.attendance.ByDate(date, classID, nil)
	if err != nil {
		return writeError(c, err)
	}

	counts := map[models.AttendanceStatus]int{}
	for _, r := range rows {
		counts[r.Status]++
	}
	return c.JSON(http.StatusOK, map[string]any{
		"date":  date,
		"total": len(rows),
		"counts": map[string]int{
			"present":         counts[models.StatusPresent],
			"absent":          counts[models.StatusAbsent],
			"late":            counts[models.StatusLate],
			"sick":            counts[models.StatusSick],
			"permitted_leave": counts[models.StatusPermittedLeave],
		},
		"records": rows,
	})
}

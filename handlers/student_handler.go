package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/services"
)

type StudentHandler struct {
	entities *services.EntityService
}

func NewStudentHandler() *StudentHandler {
	return &StudentHandler{entities: services.NewEntityService(database.DB)}
}

// POST /admin/students
func (h *StudentHandler) Create(c echo.Context) error {
	var req services.CreateStudentInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	st, err := h.entities.CreateStudent(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, st)
}

// GET /students?class_id=
func (h *StudentHandler) List(c echo.Context) error {
	classID, err := queryUint(c, "class_id")
	if err != nil {
		return err
	}
	rows, err := h.entities.ListStudents(classID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

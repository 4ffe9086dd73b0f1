package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/services"
)

type TeacherHandler struct {
	entities *services.EntityService
}

func NewTeacherHandler() *TeacherHandler {
	return &TeacherHandler{entities: services.NewEntityService(database.DB)}
}

// POST /admin/teachers
func (h *TeacherHandler) Create(c echo.Context) error {
	var req services.CreateTeacherInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.entities.CreateTeacher(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// GET /teachers
func (h *TeacherHandler) List(c echo.Context) error {
	rows, err := h.entities.ListTeachers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/teacher-subjects
func (h *TeacherHandler) AssignSubject(c echo.Context) error {
	var req services.AssignTeacherSubjectInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ts, err := h.entities.AssignTeacherSubject(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, ts)
}

// GET /teachers/:id/subjects
func (h *TeacherHandler) Subjects(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rows, err := h.entities.ListTeacherSubjects(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

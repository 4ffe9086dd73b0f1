package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/services"
)

type SubjectHandler struct {
	entities *services.EntityService
}

func NewSubjectHandler() *SubjectHandler {
	return &SubjectHandler{entities: services.NewEntityService(database.DB)}
}

// POST /admin/subjects
func (h *SubjectHandler) Create(c echo.Context) error {
	var req services.CreateSubjectInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sub, err := h.entities.CreateSubject(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, sub)
}

// GET /subjects
func (h *SubjectHandler) List(c echo.Context) error {
	rows, err := h.entities.ListSubjects()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

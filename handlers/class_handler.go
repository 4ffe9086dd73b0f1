package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/services"
)

type ClassHandler struct {
	entities *services.EntityService
}

func NewClassHandler() *ClassHandler {
	return &ClassHandler{entities: services.NewEntityService(database.DB)}
}

// POST /admin/classes
func (h *ClassHandler) Create(c echo.Context) error {
	var req services.CreateClassInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cl, err := h.entities.CreateClass(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cl)
}

// GET /classes
func (h *ClassHandler) List(c echo.Context) error {
	rows, err := h.entities.ListClasses()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

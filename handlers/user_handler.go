package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/services"
)

type UserHandler struct {
	entities *services.EntityService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{entities: services.NewEntityService(database.DB)}
}

// POST /admin/users
func (h *UserHandler) Create(c echo.Context) error {
	var req services.CreateUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.entities.CreateUser(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

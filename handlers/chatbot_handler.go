package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-attendance/database"
	"school-attendance/services"
)

type ChatbotHandler struct {
	chatbot *services.ChatbotService
}

func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{chatbot: services.NewChatbotService(database.DB)}
}

// POST /student/chatbot/message
func (h *ChatbotHandler) Message(c echo.Context) error {
	var req services.ChatbotInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.chatbot.Process(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

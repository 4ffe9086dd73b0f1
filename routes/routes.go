package routes

import (
	"github.com/labstack/echo/v4"

	"school-attendance/config"
	"school-attendance/handlers"
	"school-attendance/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	usr := handlers.NewUserHandler()
	std := handlers.NewStudentHandler()
	tch := handlers.NewTeacherHandler()
	cls := handlers.NewClassHandler()
	sub := handlers.NewSubjectHandler()
	att := handlers.NewAttendanceHandler()
	dash := handlers.NewDashboardHandler()
	bot := handlers.NewChatbotHandler()

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/auth/login", auth.Login)

	// Roster reads used by every dashboard
	e.GET("/students", std.List)
	e.GET("/teachers", tch.List)
	e.GET("/teachers/:id/subjects", tch.Subjects)
	e.GET("/classes", cls.List)
	e.GET("/subjects", sub.List)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Admin: roster management =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))
	admin.POST("/users", usr.Create)
	admin.POST("/students", std.Create)
	admin.POST("/teachers", tch.Create)
	admin.POST("/classes", cls.Create)
	admin.POST("/subjects", sub.Create)
	admin.POST("/teacher-subjects", tch.AssignSubject)

	// ===== Teacher: attendance =====
	teacher := e.Group("/teacher", authMW, middlewares.RequireRole("teacher", "admin"))
	teacher.POST("/attendance/mark", att.Mark)
	teacher.PUT("/attendance/:id", att.Update)
	teacher.GET("/attendance", att.ByDate)
	teacher.GET("/attendance/report", att.Report)
	teacher.GET("/students/:id/attendance", att.ByStudent)
	teacher.GET("/dashboard/daily", dash.Daily)

	// ===== Student: conversational attendance =====
	student := e.Group("/student", authMW, middlewares.RequireRole("student"))
	student.POST("/chatbot/message", bot.Message)
	student.GET("/students/:id/attendance", att.ByStudent)
}

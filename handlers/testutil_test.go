package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"school-attendance/database"
	"school-attendance/models"
)

// setupEnv swaps the global DB for an in-memory one and returns an echo
// instance with the request validator wired, mirroring cmd/main.go.
func setupEnv(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db

	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newRequest(e *echo.Echo, method, target string, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// invoke runs a handler and routes any returned error through echo's error
// handler so the recorder sees the final status code.
func invoke(e *echo.Echo, h echo.HandlerFunc, ctx echo.Context) {
	if err := h(ctx); err != nil {
		e.HTTPErrorHandler(err, ctx)
	}
}

type roster struct {
	teacherUser models.User
	studentUser models.User
	class       models.Class
	student     models.Student
	subject     models.Subject
}

func seedRoster(t *testing.T) roster {
	t.Helper()
	r := roster{
		teacherUser: models.User{Email: "teacher@example.com", Name: "Ms Okello", Role: models.RoleTeacher},
		studentUser: models.User{Email: "student@example.com", Name: "Jamal K", Role: models.RoleStudent},
		class:       models.Class{Name: "Grade 7A", Grade: "7"},
		subject:     models.Subject{Name: "Mathematics", Code: "MATH101"},
	}
	for _, m := range []any{&r.teacherUser, &r.studentUser, &r.class, &r.subject} {
		if err := database.DB.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	r.student = models.Student{UserID: r.studentUser.ID, StudentID: "S-0001", ClassID: r.class.ID}
	if err := database.DB.Create(&r.student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return r
}

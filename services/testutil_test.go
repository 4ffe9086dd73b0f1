package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"school-attendance/database"
	"school-attendance/models"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

type fixture struct {
	teacherUser models.User
	studentUser models.User
	class       models.Class
	student     models.Student
	subject     models.Subject
}

// seedRoster creates the minimal roster a ledger write needs: a class, a
// student with a backing user, a staff user to mark attendance, one subject.
func seedRoster(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		teacherUser: models.User{Email: "teacher@example.com", Name: "Ms Okello", Role: models.RoleTeacher},
		studentUser: models.User{Email: "student@example.com", Name: "Jamal K", Role: models.RoleStudent},
		class:       models.Class{Name: "Grade 7A", Grade: "7"},
		subject:     models.Subject{Name: "Mathematics", Code: "MATH101"},
	}
	for _, m := range []any{&f.teacherUser, &f.studentUser, &f.class, &f.subject} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	f.student = models.Student{UserID: f.studentUser.ID, StudentID: "S-0001", ClassID: f.class.ID}
	if err := db.Create(&f.student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return f
}

func strptr(s string) *string { return &s }

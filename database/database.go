package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"school-attendance/config"
	"school-attendance/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError turns driver unique-constraint violations into
	// gorm.ErrDuplicatedKey, which the services map to typed errors.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate creates/updates the schema. Exported so tests can run it against an
// in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Student{},
		&models.Teacher{},
		&models.Subject{},
		&models.TeacherSubject{},
		&models.Attendance{},
	)
}

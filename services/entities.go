package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"school-attendance/apperrors"
	"school-attendance/models"
)

// EntityService is the create/read gateway for the school roster entities.
// Uniqueness lives in the storage constraints; reference checks are explicit
// so a missing entity is reported by name.
type EntityService struct {
	db *gorm.DB
}

func NewEntityService(db *gorm.DB) *EntityService {
	return &EntityService{db: db}
}

type CreateUserInput struct {
	Email string          `json:"email" validate:"required,email"`
	Name  string          `json:"name" validate:"required"`
	Role  models.UserRole `json:"role" validate:"required,oneof=student teacher admin"`
	// Optional; only staff accounts that log in need one.
	Password string `json:"password"`
}

func (s *EntityService) CreateUser(in CreateUserInput) (*models.User, error) {
	u := models.User{Email: in.Email, Name: in.Name, Role: in.Role}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateKey("user", "email")
		}
		return nil, err
	}
	return &u, nil
}

type CreateStudentInput struct {
	UserID    uint   `json:"user_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	ClassID   uint   `json:"class_id" validate:"required"`
}

func (s *EntityService) CreateStudent(in CreateStudentInput) (*models.Student, error) {
	if err := checkExists(s.db, &models.User{}, "user", in.UserID); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.Class{}, "class", in.ClassID); err != nil {
		return nil, err
	}
	st := models.Student{UserID: in.UserID, StudentID: in.StudentID, ClassID: in.ClassID}
	if err := s.db.Create(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateKey("student", "student_id")
		}
		return nil, err
	}
	return &st, nil
}

type CreateTeacherInput struct {
	UserID     uint   `json:"user_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (s *EntityService) CreateTeacher(in CreateTeacherInput) (*models.Teacher, error) {
	if err := checkExists(s.db, &models.User{}, "user", in.UserID); err != nil {
		return nil, err
	}
	t := models.Teacher{UserID: in.UserID, EmployeeID: in.EmployeeID}
	if err := s.db.Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateKey("teacher", "employee_id")
		}
		return nil, err
	}
	return &t, nil
}

type CreateClassInput struct {
	Name    string  `json:"name" validate:"required"`
	Grade   string  `json:"grade" validate:"required"`
	Section *string `json:"section"`
}

func (s *EntityService) CreateClass(in CreateClassInput) (*models.Class, error) {
	cl := models.Class{Name: in.Name, Grade: in.Grade, Section: in.Section}
	if err := s.db.Create(&cl).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

type CreateSubjectInput struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Description *string `json:"description"`
}

func (s *EntityService) CreateSubject(in CreateSubjectInput) (*models.Subject, error) {
	sub := models.Subject{Name: in.Name, Code: in.Code, Description: in.Description}
	if err := s.db.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewDuplicateKey("subject", "code")
		}
		return nil, err
	}
	return &sub, nil
}

type AssignTeacherSubjectInput struct {
	TeacherID uint `json:"teacher_id" validate:"required"`
	SubjectID uint `json:"subject_id" validate:"required"`
	ClassID   uint `json:"class_id" validate:"required"`
}

// AssignTeacherSubject verifies teacher, subject and class in that order, so
// the first missing reference is the one named in the error.
func (s *EntityService) AssignTeacherSubject(in AssignTeacherSubjectInput) (*models.TeacherSubject, error) {
	if err := checkExists(s.db, &models.Teacher{}, "teacher", in.TeacherID); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.Subject{}, "subject", in.SubjectID); err != nil {
		return nil, err
	}
	if err := checkExists(s.db, &models.Class{}, "class", in.ClassID); err != nil {
		return nil, err
	}
	ts := models.TeacherSubject{TeacherID: in.TeacherID, SubjectID: in.SubjectID, ClassID: in.ClassID}
	if err := s.db.Create(&ts).Error; err != nil {
		return nil, err
	}
	return &ts, nil
}

// ListStudents returns all students in insertion order, optionally narrowed
// to one class.
func (s *EntityService) ListStudents(classID *uint) ([]models.Student, error) {
	tx := s.db.Order("id ASC")
	if classID != nil {
		tx = tx.Where("class_id = ?", *classID)
	}
	var rows []models.Student
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EntityService) ListTeachers() ([]models.Teacher, error) {
	var rows []models.Teacher
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EntityService) ListClasses() ([]models.Class, error) {
	var rows []models.Class
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EntityService) ListSubjects() ([]models.Subject, error) {
	var rows []models.Subject
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTeacherSubjects returns a teacher's assignments in insertion order.
func (s *EntityService) ListTeacherSubjects(teacherID uint) ([]models.TeacherSubject, error) {
	var rows []models.TeacherSubject
	if err := s.db.Where("teacher_id = ?", teacherID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

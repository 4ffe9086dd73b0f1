package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-attendance/apperrors"
	"school-attendance/models"
)

func markInput(f fixture, date string, status models.AttendanceStatus) MarkAttendanceInput {
	return MarkAttendanceInput{
		StudentID: f.student.ID,
		SubjectID: f.subject.ID,
		ClassID:   f.class.ID,
		Date:      date,
		Status:    status,
		MarkedBy:  f.teacherUser.ID,
	}
}

func TestMarkRejectsDuplicateFact(t *testing.T) {
	db := newTestDB(t)
	f := seedRoster(t, db)
	svc := NewAttendanceService(db)

	rec, err := svc.Mark(markInput(f, "2024-03-04", models.StatusPresent))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", rec.Date)
	assert.Equal(t, models.StatusPresent, rec.Status)

	_, err = svc.Mark(markInput(f, "2024-03-04", models.StatusAbsent))
	var dup *apperrors.DuplicateAttendanceError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, f.student.ID, dup.StudentID)
	assert.Equal(t, "2024-03-04", dup.Date)

	var count int64
	db.Model(&models.Attendance{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestMarkNamesFirstMissingReference(t *testing.T) {
	db := newTestDB(t)
	f := seedRoster(t, db)
	svc := NewAttendanceService(db)

	cases := []struct {
		name   string
		mutate func(*MarkAttendanceInput)
		entity string
	}{
		{"student", func(in *MarkAttendanceInput) { in.StudentID = 999 }, "student"},
		{"subject", func(in *MarkAttendanceInput) { in.SubjectID = 999 }, "subject"},
		{"class", func(in *MarkAttendanceInput) { in.ClassID = 999 }, "class"},
		{"marked_by", func(in *MarkAttendanceInput) { in.MarkedBy = 999 }, "user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := markInput(f, "2024-03-04", models.StatusPresent)
			tc.mutate(&in)
			_, err := svc.Mark(in)
			var nf *apperrors.NotFoundError
			require.True(t, errors.As(err, &nf), "got %v", err)
			assert.Equal(t, tc.entity, nf.Entity)
			assert.EqualValues(t, 999, nf.ID)
		})
	}
}

func TestUpdatePartialFields(t *testing.T) {
	db := newTestDB(t)
	f := seedRoster(t, db)
	svc := NewAttendanceService(db)

	in := markInput(f, "2024-03-04", models.StatusPresent)
	in.Notes = strptr("seat 12")
	rec, err := svc.Mark(in)
	require.NoError(t, err)

	// Status-only update leaves notes alone.
	absent := models.StatusAbsent
	got, err := svc.Update(rec.ID, UpdateAttendanceInput{Status: &absent, UpdatedBy: f.teacherUser.ID})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbsent, got.Status)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "seat 12", *got.Notes)

	// Explicit null clears notes without touching status.
	got, err = svc.Update(rec.ID, UpdateAttendanceInput{
		Notes:     OptionalString{Set: true, Value: nil},
		UpdatedBy: f.teacherUser.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, got.Notes)
	assert.Equal(t, models.StatusAbsent, got.Status)
	assert.Equal(t, "2024-03-04", got.Date, "key fields are immutable")
}

func TestUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	seedRoster(t, db)
	svc := NewAttendanceService(db)

	_, err := svc.Update(12345, UpdateAttendanceInput{UpdatedBy: 1})
	var nf *apperrors.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "attendance", nf.Entity)
	assert.EqualValues(t, 12345, nf.ID)
}

func TestByStudentSortedAndInclusiveRange(t *testing.T) {
	db := newTestDB(t)
	f := seedRoster(t, db)
	svc := NewAttendanceService(db)

	// Insert out of order; reads must come back date-ascending.
	for _, d := range []string{"2024-03-05", "2024-03-01", "2024-03-03"} {
		_, err := svc.Mark(markInput(f, d, models.StatusPresent))
		require.NoError(t, err)
	}

	rows, err := svc.ByStudent(f.student.ID, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-03-01", rows[0].Date)
	assert.Equal(t, "2024-03-03", rows[1].Date)
	assert.Equal(t, "2024-03-05", rows[2].Date)

	// Only start bound: no upper limit, bound is inclusive.
	rows, err = svc.ByStudent(f.student.ID, strptr("2024-03-03"), nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-03", rows[0].Date)

	// Only end bound: no lower limit, bound is inclusive.
	rows, err = svc.ByStudent(f.student.ID, nil, strptr("2024-03-03"), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-03", rows[1].Date)

	// Subject filter.
	other := models.Subject{Name: "History", Code: "HIST101"}
	require.NoError(t, db.Create(&other).Error)
	rows, err = svc.ByStudent(f.student.ID, nil, nil, &other.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestByDateFilters(t *testing.T) {
	db := newTestDB(t)
	f := seedRoster(t, db)
	svc := NewAttendanceService(db)

	other := models.Subject{Name: "History", Code: "HIST101"}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.Mark(markInput(f, "2024-03-04", models.StatusPresent))
	require.NoError(t, err)
	in := markInput(f, "2024-03-04", models.StatusLate)
	in.SubjectID = other.ID
	_, err = svc.Mark(in)
	require.NoError(t, err)
	_, err = svc.Mark(markInput(f, "2024-03-05", models.StatusAbsent))
	require.NoError(t, err)

	rows, err := svc.ByDate("2024-03-04", nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.ByDate("2024-03-04", &f.class.ID, &other.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusLate, rows[0].Status)

	none := uint(999)
	rows, err = svc.ByDate("2024-03-04", &none, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"school-attendance/models"
)

func TestClassifyMessage(t *testing.T) {
	cases := []struct {
		msg    string
		status models.AttendanceStatus
		ok     bool
	}{
		{"I'm present today", models.StatusPresent, true},
		{"HERE", models.StatusPresent, true},
		{"i'm in class already", models.StatusPresent, true},
		{"I am sick", models.StatusSick, true},
		{"feeling unwell today", models.StatusSick, true},
		{"I'm running behind", models.StatusLate, true},
		{"bus delayed", models.StatusLate, true},
		{"I need permission to leave early", models.StatusPermittedLeave, true},
		{"please excuse me today", models.StatusPermittedLeave, true},
		{"I'm absent today", models.StatusAbsent, true},
		{"not coming to school", models.StatusAbsent, true},

		// Priority: lateness is checked before presence.
		{"I will be late but I'm present", models.StatusLate, true},
		// "leave" outranks "sick".
		{"sick leave please", models.StatusPermittedLeave, true},

		// No keyword at all.
		{"hello there", "", false},
		{"what's the homework?", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			status, ok := ClassifyMessage(tc.msg)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.status, status)
		})
	}
}

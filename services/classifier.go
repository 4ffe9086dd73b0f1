package services

import (
	"strings"
	"unicode"

	"school-attendance/models"
)

type classifierRule struct {
	status   models.AttendanceStatus
	keywords []string
}

// classifierRules is an ordered decision list; the first matching rule wins.
// The order is load-bearing: "I will be late but I'm present" reads as late
// because lateness is checked before presence.
var classifierRules = []classifierRule{
	{models.StatusLate, []string{"late", "delayed", "running behind"}},
	{models.StatusPermittedLeave, []string{"permitted", "leave", "permission", "excuse"}},
	{models.StatusSick, []string{"sick", "ill", "unwell"}},
	{models.StatusAbsent, []string{"absent", "not coming", "missing"}},
	{models.StatusPresent, []string{"present", "here", "i'm in"}},
}

// ClassifyMessage maps free text to an attendance status, case-insensitively.
// ok is false when no keyword matched, in which case the caller must treat
// the message as unrecognized.
func ClassifyMessage(text string) (status models.AttendanceStatus, ok bool) {
	msg := strings.ToLower(strings.TrimSpace(text))
	words := splitWords(msg)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if matchKeyword(msg, words, kw) {
				return rule.status, true
			}
		}
	}
	return "", false
}

// matchKeyword matches multi-word phrases by substring and single words on
// word boundaries, so "there" does not read as "here".
func matchKeyword(msg string, words []string, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(msg, kw)
	}
	for _, w := range words {
		if w == kw {
			return true
		}
	}
	return false
}

func splitWords(msg string) []string {
	return strings.FieldsFunc(msg, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}

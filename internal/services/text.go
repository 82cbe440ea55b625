package services

import (
	"strings"

	"github.com/influencer-hub/backend/internal/textparse"
)

// label trims a short display value (names, categories, platforms) and
// refuses markup in it. Free text such as bios and messages is only trimmed.
func label(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if textparse.HasMarkup(v) {
		return "", invalid(field + " must not contain markup")
	}
	return v, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package textparse

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Optional trims an optional field; blank values become nil. The content is
// otherwise stored as given.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	out := strings.TrimSpace(*s)
	if out == "" {
		return nil
	}
	return &out
}

// HasMarkup reports whether s parses into at least one HTML element or
// comment. A bare "<" that does not open a tag ("a < b", "<3") is text.
func HasMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return false
	}
	if doc.Find("head *, body *").Length() > 0 {
		return true
	}
	// Comments and stray html/head/body tags leave no child elements.
	lower := strings.ToLower(s)
	for _, tok := range []string{"<!--", "<html", "<head", "<body", "</"} {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

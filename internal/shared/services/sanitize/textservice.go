package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type TextService interface {
	Sanitize(s string) string
}

type textServiceImpl struct {
	policy *bluemonday.Policy
}

// NewTextService returns a sanitizer for plain-text form fields. Every tag is
// stripped and entities are decoded back so stored text reads as typed.
func NewTextService() TextService {
	return &textServiceImpl{policy: bluemonday.StrictPolicy()}
}

func (s *textServiceImpl) Sanitize(text string) string {
	if !strings.ContainsAny(text, "<>&") {
		return text
	}
	return html.UnescapeString(s.policy.Sanitize(text))
}

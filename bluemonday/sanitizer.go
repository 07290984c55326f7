// Package bluemonday cleans extracted HTML fragments with
// github.com/microcosm-cc/bluemonday before Markdown conversion.
package bluemonday

import (
	"regexp"

	"github.com/fwojciec/urlmd"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements urlmd.Sanitizer at compile time.
var _ urlmd.Sanitizer = (*Sanitizer)(nil)

var languageClass = regexp.MustCompile(`^language-[\w+#-]+$`)

// Sanitizer applies a user-generated-content policy. Code block language
// classes survive so fenced blocks keep their info string.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(languageClass).OnElements("code")
	return &Sanitizer{policy: p}
}

// Sanitize returns html with disallowed elements and attributes removed.
// A policy is safe for concurrent use once built.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

package mock

import "github.com/fwojciec/urlmd"

var _ urlmd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of urlmd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*urlmd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*urlmd.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ urlmd.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of urlmd.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}

package mock

import "github.com/fwojciec/urlmd"

var _ urlmd.Converter = (*Converter)(nil)

// Converter is a mock implementation of urlmd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package urlmd

import "strings"

var punctuation = strings.NewReplacer(
	// Single quotes and prime.
	"‘", "'",
	"’", "'",
	"‚", "'",
	"‛", "'",
	"′", "'",
	// Double quotes and double prime.
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‟", `"`,
	"″", `"`,
	// Figure dash, en dash, em dash, horizontal bar.
	"‒", "-",
	"–", "-",
	"—", "-",
	"―", "-",
	"…", "...",
)

// NormalizeText replaces typographic punctuation (smart quotes, dashes,
// ellipsis) with ASCII equivalents. Applying it twice is a no-op.
func NormalizeText(s string) string {
	return punctuation.Replace(s)
}

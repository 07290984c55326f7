package urlmd

import "context"

// SourceType identifies the extraction strategy that produced a Result.
type SourceType string

// SourceType constants.
const (
	SourceForum        SourceType = "forum"
	SourceSocialStatus SourceType = "socialStatus"
	SourceGeneric      SourceType = "generic"
)

// Result is the normalized record returned for every converted URL.
type Result struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"` // Markdown
	SourceType SourceType `json:"sourceType"`
}

// Options configures a single conversion.
type Options struct {
	// ForumClientID and ForumClientSecret switch forum requests from the
	// public endpoint to the OAuth API when both are set.
	ForumClientID     string
	ForumClientSecret string

	// IncludeComments appends the comment tree to forum output.
	IncludeComments bool

	// EnableArchiveFallback retrieves an archived snapshot when a generic
	// page cannot be fetched or yields too little content.
	EnableArchiveFallback bool
}

// HasForumCredentials reports whether both forum credentials are present.
func (o Options) HasForumCredentials() bool {
	return o.ForumClientID != "" && o.ForumClientSecret != ""
}

// Source converts URLs handled by one extraction strategy.
type Source interface {
	// Convert fetches rawURL and returns a complete Result.
	// No partial Result is ever returned alongside an error.
	Convert(ctx context.Context, rawURL string, opts Options) (*Result, error)
}

// ResultWriter persists converted results.
type ResultWriter interface {
	WriteResult(ctx context.Context, rawURL string, result *Result) error
}

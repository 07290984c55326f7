package urlmd

import "context"

// Status is a single social-media status.
type Status struct {
	Author    string // display name
	AuthorURL string
	Body      string
	URL       string
}

// StatusEmbed is the embed metadata published for a status page.
type StatusEmbed struct {
	AuthorName string
	AuthorURL  string
	HTML       string // embed markup containing the status text
	URL        string
}

// StatusService fetches embed metadata for status URLs.
type StatusService interface {
	FetchStatus(ctx context.Context, statusURL string) (*StatusEmbed, error)
}

// StatusParser extracts a Status from embed metadata.
type StatusParser interface {
	ParseStatus(embed *StatusEmbed) (*Status, error)
}

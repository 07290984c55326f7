package urlmd

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Comment title limits.
const (
	MinCommentTitleLength = 3
	MaxCommentTitleLength = 200

	// DefaultCommentTitle replaces titles shorter than MinCommentTitleLength.
	DefaultCommentTitle = "Reddit Comment"
)

// Thing is a node of a forum thread: either a *Post or a *Comment.
type Thing interface {
	thing()
}

// Post is the root submission of a forum thread.
type Post struct {
	Title     string
	Body      string
	Author    string
	Permalink string // path relative to the forum host
	Created   time.Time
	Ups       int
	Downs     int
}

func (*Post) thing() {}

// Comment is a reply in a forum thread. A comment owns its replies.
type Comment struct {
	ID        string
	Author    string
	Body      string // empty when the comment was deleted
	Permalink string
	Created   time.Time
	Ups       int
	Downs     int
	Depth     int
	Replies   []*Comment
}

func (*Comment) thing() {}

// Thread is a fetched forum thread.
type Thread struct {
	Post     *Post
	Comments []*Comment // top-level comments, in source order
}

// ForumAuth selects how forum API requests are authorized: PublicAuth or
// BearerAuth. The choice is made once per conversion.
type ForumAuth interface {
	forumAuth()
}

// PublicAuth uses the unauthenticated public endpoint with a browser-like
// request signature.
type PublicAuth struct{}

// BearerAuth uses the OAuth API host with a bearer token.
type BearerAuth struct {
	Token string
}

func (PublicAuth) forumAuth() {}
func (BearerAuth) forumAuth() {}

// TokenSource exchanges forum client credentials for a bearer token.
type TokenSource interface {
	// Token performs a client-credentials grant.
	// Returns *AuthError when the token endpoint rejects the request.
	Token(ctx context.Context, clientID, clientSecret string) (string, error)
}

// ThreadService fetches forum threads from the JSON API.
type ThreadService interface {
	// FetchThread retrieves and decodes the thread at apiURL.
	// Returns *FetchError on non-success status and EUPSTREAM when the
	// public endpoint answers with HTML instead of JSON.
	FetchThread(ctx context.Context, apiURL string, auth ForumAuth) (*Thread, error)
}

// FindComment searches comments depth-first, in source order, for the
// comment with the given id. Replies are searched to any depth.
// Returns nil if no comment matches.
func FindComment(comments []*Comment, id string) *Comment {
	for _, c := range comments {
		if c.ID == id {
			return c
		}
		if found := FindComment(c.Replies, id); found != nil {
			return found
		}
	}
	return nil
}

// CommentTitle derives a title from the first line of a comment body.
func CommentTitle(body string) string {
	line, _, _ := strings.Cut(body, "\n")
	title := strings.TrimSpace(NormalizeText(line))

	n := utf8.RuneCountInString(title)
	if n < MinCommentTitleLength {
		return DefaultCommentTitle
	}
	if n > MaxCommentTitleLength {
		runes := []rune(title)
		return string(runes[:MaxCommentTitleLength-len(ellipsis)]) + ellipsis
	}
	return title
}

const ellipsis = "..."

// Normalize applies NormalizeText to every title and body in the thread.
func (t *Thread) Normalize() {
	if t.Post != nil {
		t.Post.Title = NormalizeText(t.Post.Title)
		t.Post.Body = NormalizeText(t.Post.Body)
	}
	normalizeComments(t.Comments)
}

func normalizeComments(comments []*Comment) {
	for _, c := range comments {
		c.Body = NormalizeText(c.Body)
		normalizeComments(c.Replies)
	}
}

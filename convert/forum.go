package convert

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fwojciec/urlmd"
)

// Ensure ForumSource implements urlmd.Source at compile time.
var _ urlmd.Source = (*ForumSource)(nil)

// ForumSource converts forum posts and comments.
type ForumSource struct {
	Threads urlmd.ThreadService
	Tokens  urlmd.TokenSource

	// DefaultClientID and DefaultClientSecret come from ambient
	// configuration. They are used when Options carry no credentials and,
	// unlike explicit credentials, a rejected token request degrades to
	// the public endpoint.
	DefaultClientID     string
	DefaultClientSecret string

	Logger *slog.Logger
}

// Convert fetches the thread behind rawURL. A URL naming a comment renders
// that comment; otherwise, or when the comment is not in the thread, the
// post is rendered.
func (s *ForumSource) Convert(ctx context.Context, rawURL string, opts urlmd.Options) (*urlmd.Result, error) {
	auth, err := s.authenticate(ctx, opts)
	if err != nil {
		return nil, err
	}

	_, authenticated := auth.(urlmd.BearerAuth)
	apiURL, err := urlmd.ToAPIURL(rawURL, authenticated)
	if err != nil {
		return nil, err
	}

	thread, err := s.Threads.FetchThread(ctx, apiURL, auth)
	if err != nil {
		return nil, err
	}
	thread.Normalize()

	if id := urlmd.ExtractCommentID(rawURL); id != "" && len(thread.Comments) > 0 {
		if c := urlmd.FindComment(thread.Comments, id); c != nil {
			return &urlmd.Result{
				Title:      urlmd.CommentTitle(c.Body),
				Content:    urlmd.RenderComment(c, opts.IncludeComments),
				SourceType: urlmd.SourceForum,
			}, nil
		}
		// TODO: surface a distinct "comment not found" error once callers can opt into strict comment targeting.
		loggerOrDiscard(s.Logger).Warn("comment not in thread, rendering post",
			"url", rawURL,
			"comment", id,
		)
	}

	var comments []*urlmd.Comment
	if opts.IncludeComments {
		comments = thread.Comments
	}

	return &urlmd.Result{
		Title:      thread.Post.Title,
		Content:    urlmd.RenderPost(thread.Post, comments),
		SourceType: urlmd.SourceForum,
	}, nil
}

// authenticate picks the request strategy once, before the thread fetch.
func (s *ForumSource) authenticate(ctx context.Context, opts urlmd.Options) (urlmd.ForumAuth, error) {
	if opts.HasForumCredentials() {
		if s.Tokens == nil {
			return nil, urlmd.Errorf(urlmd.EINVALID, "forum credentials given but no token source is configured")
		}
		token, err := s.Tokens.Token(ctx, opts.ForumClientID, opts.ForumClientSecret)
		if err != nil {
			return nil, err
		}
		return urlmd.BearerAuth{Token: token}, nil
	}

	if s.DefaultClientID == "" || s.DefaultClientSecret == "" || s.Tokens == nil {
		return urlmd.PublicAuth{}, nil
	}

	token, err := s.Tokens.Token(ctx, s.DefaultClientID, s.DefaultClientSecret)
	if err != nil {
		var authErr *urlmd.AuthError
		if !errors.As(err, &authErr) {
			return nil, err
		}
		loggerOrDiscard(s.Logger).Warn("forum authentication failed, using public endpoint",
			"status", authErr.StatusCode,
			"err", err,
		)
		return urlmd.PublicAuth{}, nil
	}
	return urlmd.BearerAuth{Token: token}, nil
}

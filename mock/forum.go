package mock

import (
	"context"

	"github.com/fwojciec/urlmd"
)

var _ urlmd.TokenSource = (*TokenSource)(nil)

// TokenSource is a mock implementation of urlmd.TokenSource.
type TokenSource struct {
	TokenFn func(ctx context.Context, clientID, clientSecret string) (string, error)
}

func (s *TokenSource) Token(ctx context.Context, clientID, clientSecret string) (string, error) {
	return s.TokenFn(ctx, clientID, clientSecret)
}

var _ urlmd.ThreadService = (*ThreadService)(nil)

// ThreadService is a mock implementation of urlmd.ThreadService.
type ThreadService struct {
	FetchThreadFn func(ctx context.Context, apiURL string, auth urlmd.ForumAuth) (*urlmd.Thread, error)
}

func (s *ThreadService) FetchThread(ctx context.Context, apiURL string, auth urlmd.ForumAuth) (*urlmd.Thread, error) {
	return s.FetchThreadFn(ctx, apiURL, auth)
}

// Package oauth2 implements urlmd.TokenSource with the OAuth2
// client-credentials grant.
package oauth2

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/urlmd"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the forum token endpoint.
const DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"

// DefaultUserAgent is sent to the token endpoint, which rejects generic agents.
const DefaultUserAgent = "urlmd/1.0 (by /u/urlmd)"

// DefaultTimeout bounds a token exchange.
const DefaultTimeout = 10 * time.Second

// Ensure TokenSource implements urlmd.TokenSource.
var _ urlmd.TokenSource = (*TokenSource)(nil)

// TokenSource exchanges client credentials for bearer tokens. Tokens are
// not cached; every call performs a new exchange.
type TokenSource struct {
	tokenURL  string
	userAgent string
	client    *http.Client
}

// Option configures a TokenSource.
type Option func(*TokenSource)

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) Option {
	return func(s *TokenSource) {
		s.tokenURL = u
	}
}

// WithHTTPClient sets the HTTP client used for the exchange.
func WithHTTPClient(c *http.Client) Option {
	return func(s *TokenSource) {
		s.client = c
	}
}

// WithUserAgent sets the User-Agent sent to the token endpoint.
func WithUserAgent(ua string) Option {
	return func(s *TokenSource) {
		s.userAgent = ua
	}
}

// NewTokenSource creates a new TokenSource.
func NewTokenSource(opts ...Option) *TokenSource {
	s := &TokenSource{
		tokenURL:  DefaultTokenURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}

	base := s.client
	if base == nil {
		base = &http.Client{Timeout: DefaultTimeout}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	s.client = &http.Client{
		Timeout:   base.Timeout,
		Transport: &userAgentTransport{next: transport, userAgent: s.userAgent},
	}

	return s
}

// Token sends a client_credentials grant authenticated with HTTP Basic auth.
// A non-success answer from the endpoint returns *urlmd.AuthError.
func (s *TokenSource) Token(ctx context.Context, clientID, clientSecret string) (string, error) {
	if clientID == "" || clientSecret == "" {
		return "", urlmd.Errorf(urlmd.EINVALID, "forum client id and secret are both required")
	}

	// basicAuthTransport sends the credentials unescaped.
	cfg := clientcredentials.Config{
		TokenURL:  s.tokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}

	client := &http.Client{
		Timeout: s.client.Timeout,
		Transport: &basicAuthTransport{
			next:     s.client.Transport,
			username: clientID,
			password: clientSecret,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, client)
	tok, err := cfg.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return "", &urlmd.AuthError{
				StatusCode: retrieveErr.Response.StatusCode,
				Status:     reasonPhrase(retrieveErr.Response),
			}
		}
		return "", err
	}

	return tok.AccessToken, nil
}

func reasonPhrase(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

type basicAuthTransport struct {
	next     http.RoundTripper
	username string
	password string
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.username, t.password)
	return t.next.RoundTrip(req)
}

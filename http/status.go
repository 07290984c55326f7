package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/fwojciec/urlmd"
)

// DefaultStatusEndpoint is the public oEmbed endpoint for status pages.
const DefaultStatusEndpoint = "https://publish.twitter.com/oembed"

// Ensure StatusService implements urlmd.StatusService.
var _ urlmd.StatusService = (*StatusService)(nil)

// StatusService fetches status embed metadata via oEmbed.
type StatusService struct {
	client *http.Client

	// Endpoint is the oEmbed endpoint. Defaults to DefaultStatusEndpoint.
	Endpoint string
}

// NewStatusService creates a new StatusService with the given HTTP client.
// If client is nil, a client with DefaultFetchTimeout is used.
func NewStatusService(client *http.Client) *StatusService {
	if client == nil {
		client = NewClient(DefaultFetchTimeout)
	}
	return &StatusService{client: client, Endpoint: DefaultStatusEndpoint}
}

// FetchStatus returns the embed metadata for statusURL.
func (s *StatusService) FetchStatus(ctx context.Context, statusURL string) (*urlmd.StatusEmbed, error) {
	q := url.Values{}
	q.Set("url", statusURL)
	q.Set("omit_script", "true")
	q.Set("dnt", "true")
	endpoint := s.Endpoint + "?" + q.Encode()

	req, err := NewRequest(ctx, http.MethodGet, endpoint, nil, ProfileBrowserJSON)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, statusURL); err != nil {
		return nil, err
	}

	var body struct {
		URL        string `json:"url"`
		AuthorName string `json:"author_name"`
		AuthorURL  string `json:"author_url"`
		HTML       string `json:"html"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxBodySize)).Decode(&body); err != nil {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "invalid status embed for %s: %v", statusURL, err)
	}
	if body.HTML == "" {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "status embed for %s has no content", statusURL)
	}

	embedURL := body.URL
	if embedURL == "" {
		embedURL = statusURL
	}

	return &urlmd.StatusEmbed{
		AuthorName: body.AuthorName,
		AuthorURL:  body.AuthorURL,
		HTML:       body.HTML,
		URL:        embedURL,
	}, nil
}

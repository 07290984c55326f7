package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/urlmd"
)

// Ensure ThreadService implements urlmd.ThreadService.
var _ urlmd.ThreadService = (*ThreadService)(nil)

// ThreadService fetches forum threads from the JSON API.
type ThreadService struct {
	client *http.Client
}

// NewThreadService creates a new ThreadService with the given HTTP client.
// If client is nil, a client with DefaultFetchTimeout is used.
func NewThreadService(client *http.Client) *ThreadService {
	if client == nil {
		client = NewClient(DefaultFetchTimeout)
	}
	return &ThreadService{client: client}
}

// FetchThread retrieves the thread at apiURL and decodes it.
//
// Public requests carry a browser-like signature and must come back as
// JSON; an HTML answer means the request was intercepted and fails with
// EUPSTREAM. Bearer requests go to the API, which only serves JSON, so the
// check is skipped.
func (s *ThreadService) FetchThread(ctx context.Context, apiURL string, auth urlmd.ForumAuth) (*urlmd.Thread, error) {
	var req *http.Request
	var err error
	switch a := auth.(type) {
	case urlmd.PublicAuth:
		req, err = NewRequest(ctx, http.MethodGet, apiURL, nil, ProfileBrowserJSON)
	case urlmd.BearerAuth:
		req, err = NewRequest(ctx, http.MethodGet, apiURL, nil, ProfileAPI)
		if err == nil {
			req.Header.Set("Authorization", "Bearer "+a.Token)
		}
	default:
		return nil, urlmd.Errorf(urlmd.EINVALID, "unsupported forum auth %T", auth)
	}
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, apiURL); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, err
	}

	if _, ok := auth.(urlmd.PublicAuth); ok {
		if err := checkJSON(resp.Header.Get("Content-Type"), body); err != nil {
			return nil, err
		}
	}

	return DecodeThread(body)
}

// checkJSON rejects responses that are not JSON by declaration or by content.
func checkJSON(contentType string, body []byte) error {
	if !strings.Contains(strings.ToLower(contentType), "json") ||
		bytes.HasPrefix(bytes.TrimSpace(body), []byte("<")) {
		return urlmd.Errorf(urlmd.EUPSTREAM,
			"forum returned HTML instead of JSON; the request was likely blocked or rate limited. "+
				"Use forum client credentials to access the authenticated API")
	}
	return nil
}

// DecodeThread decodes the two-element listing array served by the forum
// API: element 0 holds the post, the optional element 1 holds the comments.
func DecodeThread(body []byte) (*urlmd.Thread, error) {
	var listings []listing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "invalid forum JSON: %v", err)
	}
	if len(listings) == 0 || len(listings[0].Data.Children) == 0 {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "forum response contains no post")
	}

	var pd postData
	if err := json.Unmarshal(listings[0].Data.Children[0].Data, &pd); err != nil {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "invalid forum post: %v", err)
	}

	thread := &urlmd.Thread{
		Post: &urlmd.Post{
			Title:     pd.Title,
			Body:      pd.Selftext,
			Author:    pd.Author,
			Permalink: pd.Permalink,
			Created:   epoch(pd.CreatedUTC),
			Ups:       pd.Ups,
			Downs:     pd.Downs,
		},
	}

	if len(listings) > 1 {
		comments, err := decodeComments(listings[1].Data.Children, 0)
		if err != nil {
			return nil, err
		}
		thread.Comments = comments
	}

	return thread, nil
}

// decodeComments converts comment children at depth, skipping non-comment
// kinds such as "more" placeholders.
func decodeComments(children []child, depth int) ([]*urlmd.Comment, error) {
	var comments []*urlmd.Comment
	for _, ch := range children {
		if ch.Kind != kindComment {
			continue
		}

		var cd commentData
		if err := json.Unmarshal(ch.Data, &cd); err != nil {
			return nil, urlmd.Errorf(urlmd.EUPSTREAM, "invalid forum comment: %v", err)
		}

		c := &urlmd.Comment{
			ID:        cd.ID,
			Author:    cd.Author,
			Body:      cd.Body,
			Permalink: cd.Permalink,
			Created:   epoch(cd.CreatedUTC),
			Ups:       cd.Ups,
			Downs:     cd.Downs,
			Depth:     depth,
		}
		if cd.Replies.Listing != nil {
			replies, err := decodeComments(cd.Replies.Listing.Data.Children, depth+1)
			if err != nil {
				return nil, err
			}
			c.Replies = replies
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func epoch(seconds float64) time.Time {
	return time.Unix(int64(seconds), 0).UTC()
}

const kindComment = "t1"

type listing struct {
	Data struct {
		Children []child `json:"children"`
	} `json:"data"`
}

type child struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type postData struct {
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Author     string  `json:"author"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
	Ups        int     `json:"ups"`
	Downs      int     `json:"downs"`
}

type commentData struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
	Ups        int     `json:"ups"`
	Downs      int     `json:"downs"`
	Replies    replies `json:"replies"`
}

// replies is either an empty string or a nested listing.
type replies struct {
	Listing *listing
}

func (r *replies) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	var l listing
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	r.Listing = &l
	return nil
}

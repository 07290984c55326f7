package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/urlmd"
)

// BrowserUserAgent is sent by the browser profiles.
const BrowserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultUserAgent identifies API clients that authenticate.
const DefaultUserAgent = "urlmd/1.0 (by /u/urlmd)"

// Profile is a named set of request headers shared by every source.
type Profile int

// Profile constants.
const (
	// ProfileBrowserJSON mimics a browser fetching a JSON document.
	ProfileBrowserJSON Profile = iota
	// ProfileBrowserHTML mimics a browser navigating to a page.
	ProfileBrowserHTML
	// ProfileAPI identifies the client honestly for authenticated APIs.
	ProfileAPI
)

// Header returns the headers for the profile.
func (p Profile) Header() http.Header {
	h := make(http.Header)
	switch p {
	case ProfileBrowserJSON:
		h.Set("User-Agent", BrowserUserAgent)
		h.Set("Accept", "application/json, text/plain, */*")
		h.Set("Accept-Language", "en-US,en;q=0.9")
		h.Set("Cache-Control", "no-cache")
		h.Set("Pragma", "no-cache")
	case ProfileBrowserHTML:
		h.Set("User-Agent", BrowserUserAgent)
		h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		h.Set("Accept-Language", "en-US,en;q=0.9")
	case ProfileAPI:
		h.Set("User-Agent", DefaultUserAgent)
		h.Set("Accept", "application/json")
	}
	return h
}

// NewRequest builds a request carrying the profile's headers.
func NewRequest(ctx context.Context, method, url string, body io.Reader, profile Profile) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, urlmd.Errorf(urlmd.EINVALID, "invalid request URL %q: %v", url, err)
	}
	for key, values := range profile.Header() {
		req.Header[key] = values
	}
	return req, nil
}

// checkResponse returns a *urlmd.FetchError for non-2xx responses.
func checkResponse(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &urlmd.FetchError{
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     StatusText(resp),
	}
}

// StatusText returns the reason phrase of a response, e.g. "Not Found".
func StatusText(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/urlmd"
)

// Wayback Machine endpoints.
const (
	DefaultAvailabilityURL = "https://archive.org/wayback/available"
	DefaultSnapshotBaseURL = "https://web.archive.org/web"
)

const waybackTimestampLayout = "20060102150405"

// Ensure Archive implements urlmd.Archive.
var _ urlmd.Archive = (*Archive)(nil)

// Archive retrieves snapshots from the Wayback Machine.
type Archive struct {
	client *http.Client

	// AvailabilityURL is the availability API endpoint.
	AvailabilityURL string

	// SnapshotBaseURL prefixes raw snapshot URLs.
	SnapshotBaseURL string
}

// NewArchive creates a new Archive with the given HTTP client.
// If client is nil, a client with DefaultFetchTimeout is used.
func NewArchive(client *http.Client) *Archive {
	if client == nil {
		client = NewClient(DefaultFetchTimeout)
	}
	return &Archive{
		client:          client,
		AvailabilityURL: DefaultAvailabilityURL,
		SnapshotBaseURL: DefaultSnapshotBaseURL,
	}
}

// Snapshot returns the closest archived copy of pageURL.
// Returns ENOTFOUND if the archive holds no copy.
func (a *Archive) Snapshot(ctx context.Context, pageURL string) (*urlmd.Snapshot, error) {
	timestamp, err := a.closest(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	// The id_ modifier serves the original bytes without the archive toolbar.
	snapshotURL := fmt.Sprintf("%s/%sid_/%s", a.SnapshotBaseURL, timestamp, pageURL)

	req, err := NewRequest(ctx, http.MethodGet, snapshotURL, nil, ProfileBrowserHTML)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, snapshotURL); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, err
	}

	taken, _ := time.Parse(waybackTimestampLayout, timestamp)

	return &urlmd.Snapshot{
		URL:         snapshotURL,
		OriginalURL: pageURL,
		HTML:        string(body),
		Timestamp:   taken,
	}, nil
}

// closest asks the availability API for the timestamp of the closest snapshot.
func (a *Archive) closest(ctx context.Context, pageURL string) (string, error) {
	endpoint := a.AvailabilityURL + "?" + url.Values{"url": {pageURL}}.Encode()

	req, err := NewRequest(ctx, http.MethodGet, endpoint, nil, ProfileAPI)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, endpoint); err != nil {
		return "", err
	}

	var body struct {
		ArchivedSnapshots struct {
			Closest *struct {
				Available bool   `json:"available"`
				URL       string `json:"url"`
				Timestamp string `json:"timestamp"`
				Status    string `json:"status"`
			} `json:"closest"`
		} `json:"archived_snapshots"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxBodySize)).Decode(&body); err != nil {
		return "", urlmd.Errorf(urlmd.EUPSTREAM, "invalid archive availability response: %v", err)
	}

	closest := body.ArchivedSnapshots.Closest
	if closest == nil || !closest.Available || closest.Timestamp == "" {
		return "", urlmd.Errorf(urlmd.ENOTFOUND, "no archived snapshot of %s", pageURL)
	}

	return closest.Timestamp, nil
}

package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/urlmd"
	urlmdhttp "github.com/fwojciec/urlmd/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threadJSON = `[
  {"kind": "Listing", "data": {"children": [
    {"kind": "t3", "data": {
      "title": "Mid-project on Cursor.. easy to context switch to Claude?",
      "selftext": "Hi everyone,\n\nI'm spinning up a somewhat weighty project",
      "author": "goForIt07",
      "permalink": "/r/ClaudeAI/comments/1le69jw/midproject_on_cursor_easy_to_context_switch_to/",
      "created_utc": 1750262400.0,
      "ups": 5,
      "downs": 0
    }}
  ]}},
  {"kind": "Listing", "data": {"children": [
    {"kind": "t1", "data": {
      "id": "mye3h38",
      "author": "Motor_System_6171",
      "body": "Branch it and give it a roll man.",
      "permalink": "/r/ClaudeAI/comments/1le69jw/comment/mye3h38/",
      "created_utc": 1750266000.0,
      "ups": 3,
      "downs": 0,
      "replies": {"kind": "Listing", "data": {"children": [
        {"kind": "t1", "data": {
          "id": "r1",
          "author": "goForIt07",
          "body": "Thanks!",
          "permalink": "/r/ClaudeAI/comments/1le69jw/comment/r1/",
          "created_utc": 1750267000,
          "ups": 1,
          "downs": 0,
          "replies": {"kind": "Listing", "data": {"children": [
            {"kind": "t1", "data": {"id": "r2", "author": "x", "body": "", "replies": ""}}
          ]}}
        }},
        {"kind": "more", "data": {"count": 4, "children": ["a", "b"]}}
      ]}}
    }},
    {"kind": "t1", "data": {"id": "second", "author": "someone", "body": "Second root", "replies": ""}}
  ]}}
]`

func TestDecodeThread(t *testing.T) {
	t.Parallel()

	t.Run("decodes post and comment tree", func(t *testing.T) {
		t.Parallel()

		thread, err := urlmdhttp.DecodeThread([]byte(threadJSON))
		require.NoError(t, err)

		require.NotNil(t, thread.Post)
		assert.Equal(t, "Mid-project on Cursor.. easy to context switch to Claude?", thread.Post.Title)
		assert.Equal(t, "goForIt07", thread.Post.Author)
		assert.Equal(t, 5, thread.Post.Ups)
		assert.Equal(t, int64(1750262400), thread.Post.Created.Unix())

		require.Len(t, thread.Comments, 2)
		first := thread.Comments[0]
		assert.Equal(t, "mye3h38", first.ID)
		assert.Equal(t, 0, first.Depth)

		require.Len(t, first.Replies, 1, "more placeholders are skipped")
		reply := first.Replies[0]
		assert.Equal(t, "r1", reply.ID)
		assert.Equal(t, 1, reply.Depth)

		require.Len(t, reply.Replies, 1)
		assert.Equal(t, 2, reply.Replies[0].Depth)
		assert.Empty(t, reply.Replies[0].Body)
		assert.Empty(t, reply.Replies[0].Replies)

		assert.Equal(t, "second", thread.Comments[1].ID)
	})

	t.Run("accepts a thread without comment listing", func(t *testing.T) {
		t.Parallel()

		thread, err := urlmdhttp.DecodeThread([]byte(`[{"data":{"children":[{"kind":"t3","data":{"title":"T"}}]}}]`))
		require.NoError(t, err)
		assert.Equal(t, "T", thread.Post.Title)
		assert.Empty(t, thread.Comments)
	})

	t.Run("rejects empty listing", func(t *testing.T) {
		t.Parallel()

		_, err := urlmdhttp.DecodeThread([]byte(`[]`))
		require.Error(t, err)
		assert.Equal(t, urlmd.EUPSTREAM, urlmd.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := urlmdhttp.DecodeThread([]byte(`{"not": "an array"}`))
		require.Error(t, err)
		assert.Equal(t, urlmd.EUPSTREAM, urlmd.ErrorCode(err))
	})
}

func TestThreadService_FetchThread(t *testing.T) {
	t.Parallel()

	t.Run("public request uses browser profile", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			w.Header().Set("Content-Type", "application/json; charset=UTF-8")
			_, _ = w.Write([]byte(threadJSON))
		}))
		defer server.Close()

		svc := urlmdhttp.NewThreadService(nil)
		thread, err := svc.FetchThread(context.Background(), server.URL+"/r/x/comments/1.json", urlmd.PublicAuth{})
		require.NoError(t, err)
		assert.Equal(t, "goForIt07", thread.Post.Author)

		got := <-headers
		assert.Contains(t, got.Get("User-Agent"), "Chrome")
		assert.Equal(t, "application/json, text/plain, */*", got.Get("Accept"))
		assert.Empty(t, got.Get("Authorization"))
	})

	t.Run("public request rejects HTML content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>blocked</body></html>"))
		}))
		defer server.Close()

		_, err := urlmdhttp.NewThreadService(nil).FetchThread(context.Background(), server.URL, urlmd.PublicAuth{})
		require.Error(t, err)
		assert.Equal(t, urlmd.EUPSTREAM, urlmd.ErrorCode(err))
		assert.Contains(t, err.Error(), "HTML instead of JSON")
	})

	t.Run("public request rejects JSON-declared HTML body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("  <!DOCTYPE html><html></html>"))
		}))
		defer server.Close()

		_, err := urlmdhttp.NewThreadService(nil).FetchThread(context.Background(), server.URL, urlmd.PublicAuth{})
		require.Error(t, err)
		assert.Equal(t, urlmd.EUPSTREAM, urlmd.ErrorCode(err))
		assert.Contains(t, err.Error(), "credentials")
	})

	t.Run("bearer request sends token and skips content type check", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte(threadJSON))
		}))
		defer server.Close()

		thread, err := urlmdhttp.NewThreadService(nil).FetchThread(context.Background(), server.URL, urlmd.BearerAuth{Token: "tok"})
		require.NoError(t, err)
		assert.Len(t, thread.Comments, 2)

		got := <-headers
		assert.Equal(t, "Bearer tok", got.Get("Authorization"))
		assert.Equal(t, urlmdhttp.DefaultUserAgent, got.Get("User-Agent"))
	})

	t.Run("returns fetch error with status and reason", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := urlmdhttp.NewThreadService(nil).FetchThread(context.Background(), server.URL, urlmd.PublicAuth{})
		require.Error(t, err)

		var fetchErr *urlmd.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, 429, fetchErr.StatusCode)
		assert.Equal(t, "Too Many Requests", fetchErr.Status)
	})

	t.Run("rejects nil auth", func(t *testing.T) {
		t.Parallel()

		_, err := urlmdhttp.NewThreadService(nil).FetchThread(context.Background(), "http://example.invalid", nil)
		require.Error(t, err)
		assert.Equal(t, urlmd.EINVALID, urlmd.ErrorCode(err))
	})
}

package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/urlmd"
	"github.com/fwojciec/urlmd/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "simple path", url: "https://example.com/blog/post", want: "example.com/blog/post.md"},
		{name: "trailing slash becomes index", url: "https://www.reddit.com/r/golang/comments/1abc/x/", want: "www.reddit.com/r/golang/comments/1abc/x/index.md"},
		{name: "root becomes index", url: "https://example.com/", want: "example.com/index.md"},
		{name: "root without slash", url: "https://example.com", want: "example.com/index.md"},
		{name: "ignores query and fragment", url: "https://example.com/a?b=1#c", want: "example.com/a.md"},
		{name: "lowercases host", url: "https://X.com/user/status/1", want: "x.com/user/status/1.md"},
		{name: "cannot escape host dir", url: "https://example.com/../../etc/passwd", want: "example.com/etc/passwd.md"},
		{name: "no host", url: "/relative/path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, urlmd.EINVALID, urlmd.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// parseFrontmatter splits a formatted result into its decoded header and body.
func parseFrontmatter(t *testing.T, doc string) (map[string]string, string) {
	t.Helper()

	require.True(t, strings.HasPrefix(doc, "---\n"))
	header, body, ok := strings.Cut(strings.TrimPrefix(doc, "---\n"), "---\n\n")
	require.True(t, ok)

	var fields map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(header), &fields))
	return fields, body
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("writes source, title and type", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatResult("https://x.com/a/status/1", &urlmd.Result{
			Title:      `Tweet by "A"`,
			Content:    "# Tweet by \"A\"\n\nbody",
			SourceType: urlmd.SourceSocialStatus,
		})
		require.NoError(t, err)

		fields, body := parseFrontmatter(t, got)
		assert.Equal(t, map[string]string{
			"source":     "https://x.com/a/status/1",
			"title":      `Tweet by "A"`,
			"sourceType": "socialStatus",
		}, fields)
		assert.Equal(t, "# Tweet by \"A\"\n\nbody\n", body)
	})

	t.Run("keeps header valid for control characters", func(t *testing.T) {
		t.Parallel()

		title := "tab\there\nnew: line \x01 \\ \"q\" --- # hash"
		source := "https://example.com/a?x=1#frag: y"
		got, err := fs.FormatResult(source, &urlmd.Result{
			Title:      title,
			Content:    "body\n",
			SourceType: urlmd.SourceGeneric,
		})
		require.NoError(t, err)

		fields, body := parseFrontmatter(t, got)
		assert.Equal(t, title, fields["title"])
		assert.Equal(t, source, fields["source"])
		assert.Equal(t, "body\n", body)
	})
}

func TestWriter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes file under host directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteResult(context.Background(), "https://example.com/blog/post", &urlmd.Result{
			Title:      "Post",
			Content:    "Hello\n",
			SourceType: urlmd.SourceGeneric,
		})

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "example.com", "blog", "post.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Post\n")
		assert.Contains(t, string(data), "sourceType: generic")
		assert.Contains(t, string(data), "Hello\n")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		u := "https://example.com/page"

		require.NoError(t, w.WriteResult(context.Background(), u, &urlmd.Result{Title: "Old", Content: "old"}))
		require.NoError(t, w.WriteResult(context.Background(), u, &urlmd.Result{Title: "New", Content: "new"}))

		data, err := os.ReadFile(filepath.Join(dir, "example.com", "page.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "new")
		assert.NotContains(t, string(data), "old")
	})

	t.Run("rejects nil result", func(t *testing.T) {
		t.Parallel()

		err := fs.NewWriter(t.TempDir()).WriteResult(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, urlmd.EINVALID, urlmd.ErrorCode(err))
	})
}

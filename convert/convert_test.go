package convert_test

import (
	"context"
	"testing"

	"github.com/fwojciec/urlmd"
	"github.com/fwojciec/urlmd/convert"
	"github.com/fwojciec/urlmd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedSource(sourceType urlmd.SourceType, calls *[]string) *mock.Source {
	return &mock.Source{
		ConvertFn: func(_ context.Context, rawURL string, _ urlmd.Options) (*urlmd.Result, error) {
			*calls = append(*calls, string(sourceType)+" "+rawURL)
			return &urlmd.Result{Title: rawURL, SourceType: sourceType}, nil
		},
	}
}

func TestDispatcher_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want urlmd.SourceType
	}{
		{url: "https://www.reddit.com/r/golang/comments/1abc/x/", want: urlmd.SourceForum},
		{url: "https://OLD.Reddit.com/r/golang/", want: urlmd.SourceForum},
		{url: "https://x.com/user/status/1", want: urlmd.SourceSocialStatus},
		{url: "https://mobile.twitter.com/user/status/1", want: urlmd.SourceSocialStatus},
		{url: "https://example.com/article", want: urlmd.SourceGeneric},
		{url: "https://notreddit.com/r/x", want: urlmd.SourceGeneric},
		{url: "://not a url", want: urlmd.SourceGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			var calls []string
			d := &convert.Dispatcher{
				Forum:   namedSource(urlmd.SourceForum, &calls),
				Status:  namedSource(urlmd.SourceSocialStatus, &calls),
				Generic: namedSource(urlmd.SourceGeneric, &calls),
			}

			result, err := d.Convert(context.Background(), tt.url, urlmd.Options{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.SourceType)
			assert.Equal(t, []string{string(tt.want) + " " + tt.url}, calls)
		})
	}

	t.Run("never returns a result with an error", func(t *testing.T) {
		t.Parallel()

		d := &convert.Dispatcher{
			Generic: &mock.Source{
				ConvertFn: func(context.Context, string, urlmd.Options) (*urlmd.Result, error) {
					return &urlmd.Result{Title: "partial"}, urlmd.Errorf(urlmd.EFETCH, "boom")
				},
			},
		}

		result, err := d.Convert(context.Background(), "https://example.com", urlmd.Options{})

		assert.Nil(t, result)
		require.Error(t, err)
	})
}

package goquery_test

import (
	"testing"

	"github.com/fwojciec/urlmd"
	"github.com/fwojciec/urlmd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const embedHTML = `<blockquote class="twitter-tweet"><p lang="en" dir="ltr">Grok 4 is out.<br>Try it now <a href="https://t.co/abc">https://t.co/abc</a></p>&mdash; Jane Doe (@janedoe) <a href="https://twitter.com/janedoe/status/1?ref_src=twsrc%5Etfw">July 10, 2025</a></blockquote>`

func TestStatusParser_ParseStatus(t *testing.T) {
	t.Parallel()

	t.Run("reads body and author name", func(t *testing.T) {
		t.Parallel()

		status, err := goquery.NewStatusParser().ParseStatus(&urlmd.StatusEmbed{
			AuthorName: "Jane Doe",
			AuthorURL:  "https://twitter.com/janedoe",
			HTML:       embedHTML,
			URL:        "https://twitter.com/janedoe/status/1",
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", status.Author)
		assert.Equal(t, "https://twitter.com/janedoe", status.AuthorURL)
		assert.Equal(t, "Grok 4 is out.\nTry it now https://t.co/abc", status.Body)
		assert.Equal(t, "https://twitter.com/janedoe/status/1", status.URL)
	})

	t.Run("falls back to attribution text for author", func(t *testing.T) {
		t.Parallel()

		status, err := goquery.NewStatusParser().ParseStatus(&urlmd.StatusEmbed{HTML: embedHTML})

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", status.Author)
	})

	t.Run("joins multiple paragraphs", func(t *testing.T) {
		t.Parallel()

		status, err := goquery.NewStatusParser().ParseStatus(&urlmd.StatusEmbed{
			AuthorName: "A",
			HTML:       `<blockquote><p>First</p><p>Second</p></blockquote>`,
		})

		require.NoError(t, err)
		assert.Equal(t, "First\n\nSecond", status.Body)
	})

	t.Run("returns upstream error without markup", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewStatusParser().ParseStatus(&urlmd.StatusEmbed{AuthorName: "A"})

		require.Error(t, err)
		assert.Equal(t, urlmd.EUPSTREAM, urlmd.ErrorCode(err))
	})

	t.Run("returns upstream error without text", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewStatusParser().ParseStatus(&urlmd.StatusEmbed{
			AuthorName: "A",
			HTML:       `<blockquote><p>  </p></blockquote>`,
		})

		require.Error(t, err)
		assert.Equal(t, urlmd.EUPSTREAM, urlmd.ErrorCode(err))
	})
}

// Package fs writes converted results as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/urlmd"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a URL to a relative file path rooted at its host.
// Example: https://example.com/blog/post → example.com/blog/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", urlmd.Errorf(urlmd.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", urlmd.Errorf(urlmd.EINVALID, "URL %q has no host", rawURL)
	}

	// Cleaning against "/" drops ".." segments that would escape the host dir.
	p := path.Clean("/" + u.Path)
	if p == "/" {
		return path.Join(host, "index.md"), nil
	}
	if strings.HasSuffix(u.Path, "/") {
		return path.Join(host, p, "index.md"), nil
	}
	return path.Join(host, p) + ".md", nil
}

// frontmatter is the YAML header written above the Markdown content.
type frontmatter struct {
	Source     string           `yaml:"source"`
	Title      string           `yaml:"title"`
	SourceType urlmd.SourceType `yaml:"sourceType"`
}

// FormatResult renders a result with YAML frontmatter.
func FormatResult(rawURL string, r *urlmd.Result) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:     rawURL,
		Title:      r.Title,
		SourceType: r.SourceType,
	})
	if err != nil {
		return "", urlmd.Errorf(urlmd.EINTERNAL, "failed to encode frontmatter for %s: %v", rawURL, err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(r.Content)
	if !strings.HasSuffix(r.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements urlmd.ResultWriter at compile time.
var _ urlmd.ResultWriter = (*Writer)(nil)

// Writer writes results as Markdown files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteResult writes result to the path derived from rawURL, creating
// parent directories as needed.
func (w *Writer) WriteResult(ctx context.Context, rawURL string, result *urlmd.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if result == nil {
		return urlmd.Errorf(urlmd.EINVALID, "nil result for %s", rawURL)
	}

	relPath, err := URLToPath(rawURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	data, err := FormatResult(rawURL, result)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(data), 0o644)
}

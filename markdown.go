package urlmd

import (
	"fmt"
	"strings"
	"time"
)

// ForumBaseURL prefixes forum permalinks in rendered output.
const ForumBaseURL = "https://reddit.com"

// DeletedPlaceholder is rendered in place of a missing comment body.
const DeletedPlaceholder = "deleted"

const (
	dateLayout      = "01/02/2006, 3:04:05 PM"
	branchIndicator = "↳"
	separator       = "---"
)

// RenderPost renders a forum post. When comments is non-empty a
// "## Comments" section with the rendered comment trees is appended.
func RenderPost(p *Post, comments []*Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Body != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Body)
	}
	fmt.Fprintf(&b, "[permalink](%s%s)\n\n", ForumBaseURL, p.Permalink)
	b.WriteString(byline(p.Author, p.Ups, p.Downs, p.Created))

	if len(comments) > 0 {
		b.WriteString("\n\n## Comments\n\n")
		for _, c := range comments {
			b.WriteString(RenderCommentTree(c))
		}
	}

	return strings.TrimSpace(b.String())
}

// RenderComment renders a single comment as the primary document. When
// includeReplies is set and the comment has replies, a "## Replies" section
// is appended.
func RenderComment(c *Comment, includeReplies bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Comment by %s\n\n", c.Author)
	fmt.Fprintf(&b, "%s\n\n", commentBody(c))
	fmt.Fprintf(&b, "[permalink](%s%s)\n\n", ForumBaseURL, c.Permalink)
	b.WriteString(byline(c.Author, c.Ups, c.Downs, c.Created))

	if includeReplies && len(c.Replies) > 0 {
		b.WriteString("\n\n## Replies\n\n")
		for _, r := range c.Replies {
			b.WriteString(RenderCommentTree(r))
		}
	}

	return strings.TrimSpace(b.String())
}

// RenderCommentTree renders c and its replies depth-first in source order.
// Depth 0 renders as a heading followed by a separator after its replies;
// deeper comments render as branch lines prefixed with one branch
// indicator per depth level.
func RenderCommentTree(c *Comment) string {
	var b strings.Builder
	renderCommentTree(&b, c)
	return b.String()
}

func renderCommentTree(b *strings.Builder, c *Comment) {
	if c.Depth <= 0 {
		fmt.Fprintf(b, "##### %s (↑ %d/ ↓ %d) %s\n\n", c.Author, c.Ups, c.Downs, formatDate(c.Created))
		fmt.Fprintf(b, "%s\n\n", commentBody(c))
	} else {
		prefix := strings.Repeat(branchIndicator, c.Depth)
		fmt.Fprintf(b, "%s *%s* (↑ %d/ ↓ %d)\n", prefix, c.Author, c.Ups, c.Downs)
		for _, line := range strings.Split(commentBody(c), "\n") {
			fmt.Fprintf(b, "%s %s\n", prefix, line)
		}
		b.WriteString("\n")
	}

	for _, r := range c.Replies {
		renderCommentTree(b, r)
	}

	if c.Depth <= 0 {
		fmt.Fprintf(b, "%s\n\n", separator)
	}
}

// RenderStatus renders a social-media status with machine-parseable
// provenance lines.
func RenderStatus(s *Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", StatusTitle(s))
	if s.Body != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Body)
	}
	fmt.Fprintf(&b, "Author: %s\n", s.Author)
	fmt.Fprintf(&b, "URL: %s", s.URL)
	return b.String()
}

// StatusTitle returns the title used for a status.
func StatusTitle(s *Status) string {
	return "Tweet by " + s.Author
}

func commentBody(c *Comment) string {
	if strings.TrimSpace(c.Body) == "" {
		return DeletedPlaceholder
	}
	return c.Body
}

func byline(author string, ups, downs int, created time.Time) string {
	return fmt.Sprintf("by *%s* (↑ %d/ ↓ %d) %s", author, ups, downs, formatDate(created))
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

package urlmd

import (
	"net/url"
	"strings"
)

// ForumAPIHost serves the authenticated forum API.
const ForumAPIHost = "oauth.reddit.com"

var forumHosts = map[string]bool{
	"reddit.com":     true,
	"www.reddit.com": true,
	"old.reddit.com": true,
	"new.reddit.com": true,
	"np.reddit.com":  true,
	"m.reddit.com":   true,
}

var socialStatusHosts = map[string]bool{
	"x.com":              true,
	"www.x.com":          true,
	"mobile.x.com":       true,
	"twitter.com":        true,
	"www.twitter.com":    true,
	"mobile.twitter.com": true,
}

// Classify decides which extraction strategy applies to rawURL by exact,
// case-insensitive host match. Unknown hosts and unparsable URLs are
// SourceGeneric, so the generic fetch reports the real error.
func Classify(rawURL string) SourceType {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return SourceGeneric
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case forumHosts[host]:
		return SourceForum
	case socialStatusHosts[host]:
		return SourceSocialStatus
	}
	return SourceGeneric
}

// ExtractCommentID returns the id in a /comment/<id>/ path segment pair, or
// an empty string when the URL addresses a whole thread.
func ExtractCommentID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == "comment" && segments[i+1] != "" {
			return segments[i+1]
		}
	}
	return ""
}

// ToAPIURL rewrites a forum URL to its JSON API form. The trailing slash is
// stripped and ".json" appended when absent. When authenticated, the host is
// replaced with ForumAPIHost.
func ToAPIURL(rawURL string, authenticated bool) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "invalid forum URL: %q", rawURL)
	}

	u.Fragment = ""
	u.RawPath = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	if !strings.HasSuffix(u.Path, ".json") {
		u.Path += ".json"
	}

	if authenticated {
		u.Scheme = "https"
		u.Host = ForumAPIHost
	}

	return u.String(), nil
}

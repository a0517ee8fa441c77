package analysis

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

// Permissive on purpose: http(s) followed by anything that is not
// whitespace or a quote. Candidates get cleaned up in NormalizeURL.
var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// ValidateMessage trims and bounds the raw user message.
func ValidateMessage(raw string) (string, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return "", domain.ErrEmptyMessage
	}
	if len(msg) > domain.MaxMessageLen {
		return "", fmt.Errorf("%w: %d > %d", domain.ErrMessageTooLong, len(msg), domain.MaxMessageLen)
	}
	return msg, nil
}

// ExtractURLs returns every URL-looking substring of the message, in
// order. May be empty. Only the first one is analyzed downstream; that
// is a deliberate single-URL-per-request policy, not an oversight.
func ExtractURLs(message string) []string {
	matches := urlPattern.FindAllString(message, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		// Messages often end a link with punctuation that is not part
		// of it ("check http://x.test!").
		m = strings.TrimRight(m, ".,!?;:)]}")
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// NormalizeURL turns a candidate into a canonical, bounded,
// scheme-qualified URL. Bare domains get https:// prepended; anything
// that does not parse to a non-empty hostname is rejected.
func NormalizeURL(candidate string) (string, error) {
	c := strings.TrimSpace(candidate)
	if len(c) > domain.MaxURLLen {
		return "", fmt.Errorf("%w: %d > %d", domain.ErrURLTooLong, len(c), domain.MaxURLLen)
	}
	if !strings.HasPrefix(c, "http://") && !strings.HasPrefix(c, "https://") {
		c = "https://" + c
	}
	u, err := url.Parse(c)
	if err != nil || u.Hostname() == "" {
		return "", domain.ErrInvalidURL
	}
	return c, nil
}

package analysis

import (
	"net"
	"net/url"
	"strings"
)

var suspiciousTLDs = []string{
	".xyz", ".top", ".club", ".win", ".info", ".gq", ".tk", ".ml", ".ga", ".cf",
}

var shortenerHosts = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "ow.ly", "t.co", "is.gd", "buff.ly",
}

var impersonatedBrands = []string{
	"google", "facebook", "apple", "paypal", "microsoft", "netflix", "amazon",
}

const (
	veryLongURLThreshold      = 75
	specialCharCountThreshold = 6
)

// DetectSignals computes the boolean heuristics for a normalized URL.
// Pure and deterministic; all classifier variants that do not get
// signals from the model use this.
func DetectSignals(rawURL string) Signals {
	var s Signals
	lower := strings.ToLower(rawURL)

	s.VeryLongURL = len(rawURL) > veryLongURLThreshold

	special := 0
	for _, c := range rawURL {
		switch c {
		case '@', '%', '-', '_', '=', '&', '?':
			special++
		}
	}
	s.ManySpecialChars = special > specialCharCountThreshold

	host := ""
	if u, err := url.Parse(lower); err == nil {
		host = u.Hostname()
	}
	if host != "" && net.ParseIP(host) != nil {
		s.IPAddressInDomain = true
	}

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			s.SuspiciousTLD = true
			break
		}
	}

	for _, short := range shortenerHosts {
		if host == short || strings.HasSuffix(host, "."+short) {
			s.ShortenedURL = true
			break
		}
	}

	// Brand name present but not as the registered domain itself.
	for _, brand := range impersonatedBrands {
		if !strings.Contains(lower, brand) {
			continue
		}
		if !strings.Contains(lower, brand+".com") && !strings.Contains(lower, brand+".co.il") {
			s.LooksLikeBrandImpersonation = true
			break
		}
	}

	return s
}

// Count returns how many signals fired. Used by the local classifier to
// phrase its reasons.
func (s Signals) Count() int {
	n := 0
	for _, b := range []bool{
		s.VeryLongURL, s.ManySpecialChars, s.IPAddressInDomain,
		s.LooksLikeBrandImpersonation, s.SuspiciousTLD, s.ShortenedURL,
	} {
		if b {
			n++
		}
	}
	return n
}

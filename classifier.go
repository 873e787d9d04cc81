package webone

import "strings"

// LinkClassifier categorizes hyperlinks for link bucketing. All methods
// return false on malformed input; they never fail.
type LinkClassifier interface {
	// IsEmail reports whether the URL is an email link (mailto scheme or
	// a bare address).
	IsEmail(url string) bool

	// IsSocial reports whether the URL points at a configured
	// social-network property.
	IsSocial(url string) bool

	// IsSameDomain reports whether the URL's registrable domain matches
	// the root page's domain per the configured fuzzy-match threshold.
	IsSameDomain(root, url string) bool
}

// ClassifierConfig is the static link-classification definition loaded once
// at process start. It is injected into classifier construction rather than
// read from a global so tests can substitute thresholds.
type ClassifierConfig struct {
	// SocialDomains holds registrable-domain tokens of social networks
	// (e.g. "linkedin"), including compound subdomain_domain tokens for
	// multi-segment properties (e.g. "plus_google").
	SocialDomains []string `yaml:"social_links"`

	// InlinkThreshold is the fuzzy-match ratio (0-100) at or above which
	// two registrable domains are considered the same site.
	InlinkThreshold int `yaml:"inlink_threshold"`
}

// Validate returns an error if the configuration is unusable.
func (c ClassifierConfig) Validate() error {
	if c.InlinkThreshold < 0 || c.InlinkThreshold > 100 {
		return Errorf(EINVALID, "inlink threshold must be between 0 and 100, got %d", c.InlinkThreshold)
	}
	if len(c.SocialDomains) == 0 {
		return Errorf(EINVALID, "at least one social domain token required")
	}
	for _, token := range c.SocialDomains {
		if strings.TrimSpace(token) == "" {
			return Errorf(EINVALID, "social domain tokens must be non-empty")
		}
	}
	return nil
}

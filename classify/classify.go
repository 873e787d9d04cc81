// Package classify implements link classification against a configured
// social-domain set, using registrable-domain extraction and fuzzy string
// matching for same-domain detection.
package classify

import (
	"net/mail"
	"net/url"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/webonehq/webone"
	"golang.org/x/net/publicsuffix"
)

// Ensure Classifier implements webone.LinkClassifier at compile time.
var _ webone.LinkClassifier = (*Classifier)(nil)

// Classifier categorizes hyperlinks using an immutable configuration
// snapshot taken at construction time. Safe for concurrent use.
type Classifier struct {
	social    map[string]struct{}
	threshold int
}

// New creates a Classifier from the given configuration. Social domain
// tokens are lowercased; comparisons are case-insensitive.
func New(cfg webone.ClassifierConfig) *Classifier {
	social := make(map[string]struct{}, len(cfg.SocialDomains))
	for _, token := range cfg.SocialDomains {
		social[strings.ToLower(strings.TrimSpace(token))] = struct{}{}
	}
	return &Classifier{social: social, threshold: cfg.InlinkThreshold}
}

// AbsoluteURL resolves href against base per standard relative-URL
// resolution rules. On malformed input it returns href unchanged rather
// than failing.
func AbsoluteURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// IsEmail reports whether the string is an email link: either it carries a
// mailto scheme (case-insensitive) or it independently parses as a bare
// address. False on any malformed input.
func (c *Classifier) IsEmail(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(strings.ToLower(s), "mailto:") {
		return true
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress accepts display-name forms like "A <a@b.com>"; a link
	// is only an email when the whole string is the address.
	return addr.Address == s
}

// IsSocial reports whether the URL points at a configured social-network
// property. It matches either the registrable-domain token (e.g.
// "linkedin") or the subdomain_domain compound token (e.g. "plus_google").
// False on any resolution failure.
func (c *Classifier) IsSocial(s string) bool {
	domain, subdomain, ok := domainParts(s)
	if !ok {
		return false
	}
	if _, found := c.social[domain]; found {
		return true
	}
	if subdomain != "" {
		if _, found := c.social[subdomain+"_"+domain]; found {
			return true
		}
	}
	return false
}

// IsSameDomain reports whether the registrable domains of root and s match
// within the configured fuzzy-match threshold. The fuzzy comparison is an
// intentional heuristic: it treats near-duplicate domains (regional TLD
// variants, close spellings) as the same site, which exact equality would
// not. False on any resolution failure.
func (c *Classifier) IsSameDomain(root, s string) bool {
	rootDomain, _, ok := domainParts(root)
	if !ok {
		return false
	}
	childDomain, _, ok := domainParts(s)
	if !ok {
		return false
	}
	return fuzzy.Ratio(rootDomain, childDomain) >= c.threshold
}

// domainParts splits a URL into its registrable-domain token (the label
// before the public suffix) and its subdomain prefix, both lowercased.
// Hosts without a recognizable public suffix fall back to the leading
// label so classification can still proceed.
func domainParts(raw string) (domain, subdomain string, ok bool) {
	host := hostOf(raw)
	if host == "" {
		return "", "", false
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		labels := strings.Split(host, ".")
		return labels[0], "", true
	}

	domain, _, _ = strings.Cut(etld1, ".")
	subdomain = strings.TrimSuffix(strings.TrimSuffix(host, etld1), ".")
	return domain, subdomain, true
}

// hostOf extracts the lowercased hostname, tolerating scheme-less input
// like "www.example.com/about".
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err == nil && u.Hostname() != "" {
		return strings.ToLower(u.Hostname())
	}
	u, err = url.Parse("http://" + raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

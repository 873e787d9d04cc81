package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webonehq/webone"
	"github.com/webonehq/webone/classify"
)

func testConfig() webone.ClassifierConfig {
	return webone.ClassifierConfig{
		SocialDomains: []string{
			"linkedin", "facebook", "twitter", "youtube",
			"instagram", "pinterest", "plus_google",
		},
		InlinkThreshold: 85,
	}
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative path against base", func(t *testing.T) {
		t.Parallel()

		got := classify.AbsoluteURL("https://example.com/", "/path")
		assert.Equal(t, "https://example.com/path", got)
	})

	t.Run("resolves relative path against nested base", func(t *testing.T) {
		t.Parallel()

		got := classify.AbsoluteURL("https://example.com/docs/intro", "guide")
		assert.Equal(t, "https://example.com/docs/guide", got)
	})

	t.Run("leaves absolute URL unchanged", func(t *testing.T) {
		t.Parallel()

		got := classify.AbsoluteURL("https://example.com/", "https://other.org/a")
		assert.Equal(t, "https://other.org/a", got)
	})

	t.Run("returns href unchanged on malformed input", func(t *testing.T) {
		t.Parallel()

		got := classify.AbsoluteURL("https://example.com/", "http://[::1%")
		assert.Equal(t, "http://[::1%", got)
	})
}

func TestClassifier_IsEmail(t *testing.T) {
	t.Parallel()

	c := classify.New(testConfig())

	t.Run("mailto scheme", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.IsEmail("mailto:someone@example.com"))
	})

	t.Run("mailto scheme is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.IsEmail("MAILTO:someone@example.com"))
	})

	t.Run("bare address", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.IsEmail("someone@example.com"))
	})

	t.Run("http URL is not an email", func(t *testing.T) {
		t.Parallel()
		assert.False(t, c.IsEmail("https://example.com/contact"))
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		assert.False(t, c.IsEmail(""))
	})

	t.Run("garbage input never fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, c.IsEmail("@@@not an address@@@"))
	})
}

func TestClassifier_IsSocial(t *testing.T) {
	t.Parallel()

	c := classify.New(testConfig())

	t.Run("configured social domain", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.IsSocial("https://www.linkedin.com/in/x"))
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.IsSocial("https://WWW.FACEBOOK.COM/page"))
	})

	t.Run("compound subdomain_domain token", func(t *testing.T) {
		t.Parallel()
		assert.True(t, c.IsSocial("https://plus.google.com/+x"))
	})

	t.Run("non-social domain", func(t *testing.T) {
		t.Parallel()
		assert.False(t, c.IsSocial("https://example.org"))
	})

	t.Run("plain google is not social", func(t *testing.T) {
		t.Parallel()
		assert.False(t, c.IsSocial("https://www.google.com/search"))
	})

	t.Run("unresolvable input", func(t *testing.T) {
		t.Parallel()
		assert.False(t, c.IsSocial(""))
	})
}

func TestClassifier_IsSameDomain(t *testing.T) {
	t.Parallel()

	t.Run("identical domain matches", func(t *testing.T) {
		t.Parallel()

		c := classify.New(testConfig())
		assert.True(t, c.IsSameDomain("https://example.com", "https://example.com/about"))
	})

	t.Run("subdomain still matches", func(t *testing.T) {
		t.Parallel()

		c := classify.New(testConfig())
		assert.True(t, c.IsSameDomain("https://example.com", "https://blog.example.com/post"))
	})

	t.Run("unrelated domain does not match", func(t *testing.T) {
		t.Parallel()

		c := classify.New(testConfig())
		assert.False(t, c.IsSameDomain("https://example.com", "https://totallydifferent.org"))
	})

	t.Run("unresolvable input", func(t *testing.T) {
		t.Parallel()

		c := classify.New(testConfig())
		assert.False(t, c.IsSameDomain("https://example.com", ""))
	})

	// The fuzzy threshold is a tunable approximation, not an exact
	// same-site determination. "example" vs "exampl" scores 92, so it
	// flips across a threshold of 92/93.
	t.Run("near-duplicate domain at threshold boundary", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.InlinkThreshold = 92
		assert.True(t, classify.New(cfg).IsSameDomain("https://example.com", "https://exampl.com"))

		cfg.InlinkThreshold = 93
		assert.False(t, classify.New(cfg).IsSameDomain("https://example.com", "https://exampl.com"))
	})

	t.Run("regional TLD variant matches by design", func(t *testing.T) {
		t.Parallel()

		c := classify.New(testConfig())
		assert.True(t, c.IsSameDomain("https://example.com", "https://example.co.uk"))
	})
}

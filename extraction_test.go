package webone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webonehq/webone"
)

func TestLinkGroups_Total(t *testing.T) {
	t.Parallel()

	groups := webone.LinkGroups{
		Emails:      []webone.Link{{Href: "mailto:a@example.com"}},
		SocialLinks: []webone.Link{{Href: "https://linkedin.com/in/a"}},
		Inlinks:     []webone.Link{{Href: "https://example.com/a"}, {Href: "https://example.com/b"}},
		Outlinks:    nil,
	}

	assert.Equal(t, 4, groups.Total())
}

func TestResult_OK(t *testing.T) {
	t.Parallel()

	ok := &webone.Result{Header: webone.Header{StatusCode: webone.StatusOK}}
	failed := &webone.Result{Header: webone.Header{StatusCode: webone.StatusFailed}}

	assert.True(t, ok.OK())
	assert.False(t, failed.OK())
}

func TestClassifierConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()

		cfg := webone.ClassifierConfig{
			SocialDomains:   []string{"linkedin", "plus_google"},
			InlinkThreshold: 85,
		}

		assert.NoError(t, cfg.Validate())
	})

	t.Run("threshold above 100 rejected", func(t *testing.T) {
		t.Parallel()

		cfg := webone.ClassifierConfig{
			SocialDomains:   []string{"linkedin"},
			InlinkThreshold: 101,
		}

		err := cfg.Validate()
		assert.Equal(t, webone.EINVALID, webone.ErrorCode(err))
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		t.Parallel()

		cfg := webone.ClassifierConfig{
			SocialDomains:   []string{"linkedin"},
			InlinkThreshold: -1,
		}

		err := cfg.Validate()
		assert.Equal(t, webone.EINVALID, webone.ErrorCode(err))
	})

	t.Run("empty social domain set rejected", func(t *testing.T) {
		t.Parallel()

		cfg := webone.ClassifierConfig{InlinkThreshold: 85}

		err := cfg.Validate()
		assert.Equal(t, webone.EINVALID, webone.ErrorCode(err))
	})

	t.Run("blank token rejected", func(t *testing.T) {
		t.Parallel()

		cfg := webone.ClassifierConfig{
			SocialDomains:   []string{"linkedin", "  "},
			InlinkThreshold: 85,
		}

		err := cfg.Validate()
		assert.Equal(t, webone.EINVALID, webone.ErrorCode(err))
	})
}

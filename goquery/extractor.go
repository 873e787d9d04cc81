// Package goquery implements the webone extraction pipeline on top of the
// goquery DOM library.
package goquery

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/webonehq/webone"
	"github.com/webonehq/webone/classify"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements webone.Extractor at compile time.
var _ webone.Extractor = (*Extractor)(nil)

// Extractor turns raw HTML into a structured webone.Result. Each call owns
// its own document tree; the only shared state is the injected classifier,
// which is read-only, so concurrent calls need no coordination.
type Extractor struct {
	classifier webone.LinkClassifier
	logger     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for extraction diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor that classifies links with the given classifier.
func New(classifier webone.LinkClassifier, opts ...Option) *Extractor {
	e := &Extractor{
		classifier: classifier,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML fetched from url and assembles the extraction
// record. Field extraction runs in a fixed order: script tag data is
// harvested before script and style nodes are removed, and the raw text is
// computed last so it reflects human-visible content only.
//
// Extract never fails: unparseable or empty input produces a result with
// the failure sentinel in the header and a zero body.
func (e *Extractor) Extract(url string, rawHTML []byte) *webone.Result {
	result := &webone.Result{
		Header: webone.Header{
			URL:         url,
			ExtractedAt: time.Now().UTC(),
			StatusCode:  webone.StatusOK,
			StatusMsg:   webone.StatusMsgOK,
		},
	}

	doc, err := parse(rawHTML)
	if err != nil {
		result.Header.StatusCode = webone.StatusFailed
		result.Header.StatusMsg = webone.StatusMsgFailed
		e.logger.Error("extraction failed", "url", url, "error", err)
		return result
	}

	result.Body.Title = firstText(doc.Find("title"))
	result.Body.Encoding = detectEncoding(rawHTML)
	result.Body.SEO = seoData(doc)
	result.Body.Images = imageTags(doc)
	result.Body.Scripts = scriptTags(doc)

	// Script sources are harvested above; drop script and style nodes so
	// the raw text below reflects human-visible content only.
	doc.Find("script").Remove()
	doc.Find("style").Remove()

	result.Body.Meta = metaTags(doc)
	result.Body.Links = e.links(doc, url)
	result.Body.RawText = doc.Text()

	return result
}

// parse builds the document tree. Empty or whitespace-only input is
// rejected before parsing: the HTML parser itself accepts almost anything,
// and an empty payload must surface as the degraded result.
func parse(rawHTML []byte) (*goquery.Document, error) {
	if len(bytes.TrimSpace(rawHTML)) == 0 {
		return nil, webone.Errorf(webone.EINVALID, "raw HTML is either missing or empty")
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
}

// detectEncoding reports the character encoding of the raw payload from
// its BOM or meta declarations. Empty string when nothing could be
// determined: DetermineEncoding falls back to windows-1252 when it has no
// evidence at all, and reporting that guess would be misleading.
func detectEncoding(rawHTML []byte) string {
	_, name, certain := charset.DetermineEncoding(rawHTML, "")
	if !certain && name == "windows-1252" {
		return ""
	}
	return name
}

// seoData collects the raw text of ld+json structured-data blocks in
// document order.
func seoData(doc *goquery.Document) []string {
	seo := []string{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		seo = append(seo, rawText(sel))
	})
	return seo
}

// imageTags collects img tags that carry a non-empty src.
func imageTags(doc *goquery.Document) []webone.Image {
	images := []webone.Image{}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src := attrValue(sel, "src")
		if src == "" {
			return
		}
		images = append(images, webone.Image{
			Src: src,
			Alt: attrValue(sel, "alt"),
		})
	})
	return images
}

// scriptTags collects script tags that carry a non-empty src. Inline
// scripts (including the ld+json blocks harvested by seoData) have no src
// and are skipped.
func scriptTags(doc *goquery.Document) []webone.Script {
	scripts := []webone.Script{}
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		src := attrValue(sel, "src")
		if src == "" {
			return
		}
		scripts = append(scripts, webone.Script{
			Src:  src,
			Type: attrValue(sel, "type"),
		})
	})
	return scripts
}

// metaTags collects the full attribute set of every meta tag that has at
// least one attribute.
func metaTags(doc *goquery.Document) []webone.Meta {
	meta := []webone.Meta{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 || len(sel.Nodes[0].Attr) == 0 {
			return
		}
		m := make(webone.Meta, len(sel.Nodes[0].Attr))
		for _, attr := range sel.Nodes[0].Attr {
			m[attr.Key] = attr.Val
		}
		meta = append(meta, m)
	})
	return meta
}

// links walks every anchor, resolves its href against the page URL and
// classifies it into exactly one bucket, tested in priority order:
// email, social, same-domain, other. A malformed href never aborts the
// walk; absolutization falls back to the raw value and the classifiers
// report false on anything they cannot resolve.
func (e *Extractor) links(doc *goquery.Document, baseURL string) webone.LinkGroups {
	groups := webone.LinkGroups{
		Emails:      []webone.Link{},
		SocialLinks: []webone.Link{},
		Inlinks:     []webone.Link{},
		Outlinks:    []webone.Link{},
	}

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		link := webone.Link{
			Href: classify.AbsoluteURL(baseURL, attrValue(sel, "href")),
			ID:   attrValue(sel, "id"),
			Name: attrValue(sel, "name"),
			Text: firstText(sel),
		}

		switch {
		case e.classifier.IsEmail(link.Href):
			groups.Emails = append(groups.Emails, link)
		case e.classifier.IsSocial(link.Href):
			groups.SocialLinks = append(groups.SocialLinks, link)
		case e.classifier.IsSameDomain(baseURL, link.Href):
			groups.Inlinks = append(groups.Inlinks, link)
		default:
			groups.Outlinks = append(groups.Outlinks, link)
		}
	})

	return groups
}

package webone

import "time"

// Extraction status sentinels reported in Header. StatusFailed is used when
// the raw HTML could not be parsed into a usable document tree; it is the
// only failure the pipeline surfaces, everything narrower degrades to safe
// defaults inside the field extractors.
const (
	StatusOK     = 200
	StatusFailed = 999

	StatusMsgOK     = "OK"
	StatusMsgFailed = "raw HTML is either missing or empty"
)

// Header describes a single extraction run.
type Header struct {
	URL         string    `json:"url"`
	ExtractedAt time.Time `json:"extracted_ts"`
	StatusCode  int       `json:"status_code"`
	StatusMsg   string    `json:"status_msg"`
}

// Link represents a single anchor tag with its href resolved to an
// absolute URL. The JSON keys follow the service's wire contract.
type Link struct {
	Href string `json:"href"`
	ID   string `json:"aid"`
	Name string `json:"aname"`
	Text string `json:"atext"`
}

// LinkGroups partitions a page's anchors into exactly one bucket each,
// tested in priority order: email, social, same-domain, other.
type LinkGroups struct {
	Emails      []Link `json:"emails"`
	SocialLinks []Link `json:"sociallinks"`
	Inlinks     []Link `json:"inlinks"`
	Outlinks    []Link `json:"outlinks"`
}

// Total returns the number of links across all buckets.
func (g LinkGroups) Total() int {
	return len(g.Emails) + len(g.SocialLinks) + len(g.Inlinks) + len(g.Outlinks)
}

// Image describes an img tag. Only tags with a non-empty src are recorded.
type Image struct {
	Src string `json:"img_src"`
	Alt string `json:"img_alt"`
}

// Script describes a script tag. Only tags with a non-empty src are recorded.
type Script struct {
	Src  string `json:"script_src"`
	Type string `json:"script_type"`
}

// Meta holds the full attribute set of one meta tag. Only tags with at
// least one attribute are recorded.
type Meta map[string]string

// Body holds the content extracted from a parsed page.
type Body struct {
	Title    string     `json:"title"`
	Encoding string     `json:"encoded_in"`
	SEO      []string   `json:"seo"`
	Images   []Image    `json:"images"`
	Scripts  []Script   `json:"scripts"`
	Meta     []Meta     `json:"meta"`
	Links    LinkGroups `json:"links"`
	RawText  string     `json:"raw_text"`
}

// Result is the sole output of the extraction pipeline. On the degraded
// path (unparseable input) Body is the zero value and Header carries the
// failure sentinel.
type Result struct {
	Header Header `json:"header"`
	Body   Body   `json:"body"`
}

// OK reports whether the extraction produced a usable document tree.
func (r *Result) OK() bool {
	return r.Header.StatusCode == StatusOK
}

// Extractor turns a page's raw HTML into a structured Result.
//
// Extract never returns an error: parse failure is reported through the
// Header status fields and narrower failures degrade to empty values.
// Implementations must be pure per call and safe for concurrent use.
type Extractor interface {
	Extract(url string, rawHTML []byte) *Result
}

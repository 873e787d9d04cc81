package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// whitespace characters collapsed to single spaces by firstText.
var collapser = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// firstText returns the text content of the selection's first node with
// leading/trailing whitespace trimmed and tab, carriage-return and newline
// characters replaced by single spaces. Empty string when the selection is
// nil or has no nodes.
func firstText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return collapser.Replace(strings.TrimSpace(sel.First().Text()))
}

// rawText returns the text content unmodified. Empty string when the
// selection is nil or has no nodes.
func rawText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return sel.Text()
}

// attrValue returns the attribute value if present, empty string otherwise.
func attrValue(sel *goquery.Selection, name string) string {
	val, _ := sel.Attr(name)
	return val
}

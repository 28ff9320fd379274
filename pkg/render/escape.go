package render

import "strings"

// htmlEntities are escaped in text and attribute values alike.
var htmlEntities = []string{
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
}

var (
	textEscaper = strings.NewReplacer(htmlEntities...)

	// Attribute values also encode whitespace that a prefix or explicit id
	// may carry, so the value survives a round trip through the DOM intact.
	attrEscaper = strings.NewReplacer(append([]string{
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	}, htmlEntities...)...)
)

func escapeHTML(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

package widget

import "strings"

var outputEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeOutput escapes the HTML metacharacters &, < and >.
// Quotes are left alone: output only ever lands in element content.
func EscapeOutput(text string) string {
	return outputEscaper.Replace(text)
}

// RenderOutput wraps text in a preformatted block that keeps line breaks and spacing.
func RenderOutput(text string) string {
	return `<pre class="output-text">` + EscapeOutput(text) + `</pre>`
}

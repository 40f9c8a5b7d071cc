// Package views embeds the HTML templates of the widget page.
package views

import "embed"

// FS holds the page, layout and partial templates.
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS

// Package templates embeds the storefront's html/template pages.
package templates

import "embed"

//go:embed *.html
var FS embed.FS

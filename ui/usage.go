package ui

import _ "embed"

// usageGuide is rendered to HTML and served at / when no frontend bundle is
// configured.
//
//go:embed usage.md
var usageGuide []byte

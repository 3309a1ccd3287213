// Package web holds the embedded upload UI.
package web

import _ "embed"

// IndexPage is the single-page upload UI served at /.
//
//go:embed index.html
var IndexPage []byte

// Package web embute a página estática do dashboard, servida pelo próprio
// processo da API.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte

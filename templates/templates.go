package templates

import (
	"embed"
	"html/template"

	"github.com/joeyave/scala-booking/txt"
)

//go:embed *.go.html
var files embed.FS

var funcs = template.FuncMap{
	"t": txt.Get,
	// safe marks HTML that was already sanitized.
	"safe": func(s string) template.HTML {
		return template.HTML(s)
	},
}

// New parses every page template. Pages are looked up by file name, e.g. "team_type.go.html".
func New() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.go.html"))
}

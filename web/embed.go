// Package web embeds the server-rendered HTML templates so the binary ships
// self-contained, with no template directory to deploy alongside it.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Templates parses the embedded page templates, ready for
// gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		// fielderr looks up a field message, tolerating a page rendered
		// without any Errors map at all.
		"fielderr": func(errs interface{}, key string) string {
			if m, ok := errs.(map[string]string); ok {
				return m[key]
			}
			return ""
		},
	})
	return template.Must(t.ParseFS(templates, "templates/*.tmpl"))
}

// Package web holds the HTML templates for the assessment form.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"isSelected": func(values map[string]string, name, option string) bool {
			return values[name] == option
		},
	}).ParseFS(templateFS, "templates/*.html")
}

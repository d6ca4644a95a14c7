package api

import (
	"embed"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ruhan312/bangalore-connect/pkg/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// loadTemplates parses the embedded page templates. Embedding keeps the
// binary self-contained and the tests independent of the working directory.
func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"formatDescription": utils.FormatDescription,
		"postedAgo": func(timestamp int64) string {
			return humanize.Time(time.UnixMilli(timestamp))
		},
	}

	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

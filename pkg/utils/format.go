package utils

import (
	"html/template"
	"strings"
)

// FormatDescription escapes a job description and converts its line
// breaks to <br> tags so templates can render it as paragraphs.
func FormatDescription(description string) template.HTML {
	escaped := template.HTMLEscapeString(description)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

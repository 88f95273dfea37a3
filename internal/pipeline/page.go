package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// ErrPageRender indicates the page template could not be executed.
var ErrPageRender = errors.New("page template rendering failed")

// pageTemplate wraps a listing in a complete HTML5 document.
// Intro and Body are trusted HTML; the listing format is not escaped.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .CSS}}
<style>{{.CSS}}</style>
{{- end}}
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .Intro}}
<section class="intro">
{{.Intro}}
</section>
{{- end}}
<section class="entries">
{{.Body}}
</section>
</body>
</html>
`

// Page holds the parts of one standalone document.
type Page struct {
	Title string
	CSS   string
	Intro string // HTML fragment
	Body  string // HTML fragment
}

// pageData is the template view of a Page.
type pageData struct {
	Title string
	CSS   template.CSS
	Intro template.HTML
	Body  template.HTML
}

// PageBuilder renders Page values with the document template.
type PageBuilder struct {
	tmpl *template.Template
}

// NewPageBuilder parses the document template.
func NewPageBuilder() (*PageBuilder, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return &PageBuilder{tmpl: tmpl}, nil
}

// Build renders p as a complete HTML document.
func (b *PageBuilder) Build(ctx context.Context, p Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := pageData{
		Title: p.Title,
		CSS:   template.CSS(p.CSS),     // #nosec G203 -- stylesheet comes from embedded assets
		Intro: template.HTML(p.Intro), // #nosec G203 -- produced by goldmark without unsafe mode
		Body:  template.HTML(p.Body),  // #nosec G203 -- listings are intentionally unescaped
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

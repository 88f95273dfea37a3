package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrIntroConversion indicates the Markdown introduction could not be converted.
var ErrIntroConversion = errors.New("intro conversion failed")

// IntroRenderer abstracts Markdown to HTML conversion of the page introduction.
type IntroRenderer interface {
	RenderIntro(ctx context.Context, markdown string) (string, error)
}

// IntroConverter converts Markdown to an HTML fragment using goldmark.
type IntroConverter struct {
	md goldmark.Markdown
}

// NewIntroConverter creates an IntroConverter with GFM extensions and
// class-based syntax highlighting for fenced code.
func NewIntroConverter() *IntroConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &IntroConverter{md: md}
}

// RenderIntro converts markdown to an HTML fragment.
// Empty input yields an empty fragment.
func (c *IntroConverter) RenderIntro(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if markdown == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIntroConversion, err)
	}
	return buf.String(), nil
}

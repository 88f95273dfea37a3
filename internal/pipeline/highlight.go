package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightStyle is the chroma style used for declarations and intro code.
const HighlightStyle = "github"

// sourceLanguage is the lexer used for declaration lines.
const sourceLanguage = "javascript"

// ErrHighlight indicates source highlighting failed.
var ErrHighlight = errors.New("source highlighting failed")

// SourceHighlighter renders declaration lines as class-annotated HTML.
type SourceHighlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewSourceHighlighter creates a highlighter for JavaScript declarations.
func NewSourceHighlighter() *SourceHighlighter {
	lexer := lexers.Get(sourceLanguage)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(HighlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	return &SourceHighlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Highlight renders code as a <pre> block with chroma classes.
func (h *SourceHighlighter) Highlight(code string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return b.String(), nil
}

// CSS returns the stylesheet matching the classes emitted by Highlight.
func (h *SourceHighlighter) CSS() (string, error) {
	var b strings.Builder
	if err := h.formatter.WriteCSS(&b, h.style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return b.String(), nil
}

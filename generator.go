package docgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-docgen/internal/assets"
	"github.com/alnah/go-docgen/internal/pipeline"
)

// StyleLoader loads standalone page stylesheets by name.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ StyleLoader            = (*assets.EmbeddedLoader)(nil)
	_ pipeline.IntroRenderer = (*pipeline.IntroConverter)(nil)
)

// Generator scans one source text and renders its listings.
// Create with NewGenerator; a Generator holds no per-run state and may be
// reused.
type Generator struct {
	onWarning func(Warning)
	page      *PageOptions
	css       *string
	styles    StyleLoader

	// Standalone stages, built only when a page is requested.
	intro       pipeline.IntroRenderer
	highlighter *pipeline.SourceHighlighter
	builder     *pipeline.PageBuilder
	pageCSS     string
}

// NewGenerator creates a Generator.
// Returns an error if standalone options are invalid or the style is unknown.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{styles: assets.NewEmbeddedLoader()}
	for _, opt := range opts {
		opt(g)
	}

	if g.page == nil {
		return g, nil
	}

	if err := g.page.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	if err := g.initPage(); err != nil {
		return nil, err
	}
	return g, nil
}

// initPage resolves the stylesheet and builds the page stages.
func (g *Generator) initPage() error {
	css, err := g.resolveCSS()
	if err != nil {
		return err
	}

	g.highlighter = pipeline.NewSourceHighlighter()
	sourceCSS, err := g.highlighter.CSS()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageBuild, err)
	}
	g.pageCSS = css + "\n" + sourceCSS

	g.builder, err = pipeline.NewPageBuilder()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageBuild, err)
	}
	if g.intro == nil {
		g.intro = pipeline.NewIntroConverter()
	}
	return nil
}

func (g *Generator) resolveCSS() (string, error) {
	if g.css != nil {
		return *g.css, nil
	}
	name := g.page.Style
	if name == "" {
		name = DefaultStyleName
	}
	css, err := g.styles.LoadStyle(name)
	if err != nil {
		return "", fmt.Errorf("loading style: %w", err)
	}
	return css, nil
}

// Generate scans input.Source and renders both listings.
// The output is deterministic: the same input always yields the same bytes.
func (g *Generator) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scan := scanLines(SplitLines(input.Source), g.onWarning)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Entries:      scan.Entries,
		Warnings:     scan.Warnings,
		UnclosedLine: scan.UnclosedLine,
	}

	if g.page == nil {
		listings := Render(scan.Entries)
		result.All = []byte(listings.All)
		result.Public = []byte(listings.Public)
		return result, nil
	}

	all, public, err := g.renderPages(ctx, scan.Entries, input.Intro)
	if err != nil {
		return nil, err
	}
	result.All = []byte(all)
	result.Public = []byte(public)
	return result, nil
}

// renderPages renders both listings as standalone documents.
func (g *Generator) renderPages(ctx context.Context, entries []Entry, introMarkdown string) (all, public string, err error) {
	intro, err := g.intro.RenderIntro(ctx, introMarkdown)
	if err != nil {
		return "", "", fmt.Errorf("rendering intro: %w", err)
	}

	var allBody, publicBody strings.Builder
	for _, e := range entries {
		fragment, err := g.pageFragment(e)
		if err != nil {
			return "", "", err
		}
		allBody.WriteString(fragment)
		if IsPublic(e) {
			publicBody.WriteString(fragment)
		}
	}

	title := g.page.Title
	if title == "" {
		title = DefaultTitle
	}

	all, err = g.builder.Build(ctx, pipeline.Page{
		Title: title,
		CSS:   g.pageCSS,
		Intro: intro,
		Body:  allBody.String(),
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrPageBuild, err)
	}

	public, err = g.builder.Build(ctx, pipeline.Page{
		Title: title,
		CSS:   g.pageCSS,
		Intro: intro,
		Body:  publicBody.String(),
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrPageBuild, err)
	}

	return all, public, nil
}

// pageFragment renders an entry for a standalone page: the listing fragment,
// followed by its highlighted declaration when ShowSource is set.
func (g *Generator) pageFragment(e Entry) (string, error) {
	fragment := RenderEntry(e)
	if !g.page.ShowSource || e.Declaration == "" {
		return fragment, nil
	}
	source, err := g.highlighter.Highlight(e.Declaration)
	if err != nil {
		return "", fmt.Errorf("%w: line %d: %v", ErrPageBuild, e.Line, err)
	}
	return fragment + source, nil
}

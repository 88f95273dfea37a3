package docgen

// Option configures a Generator.
type Option func(*Generator)

// WithWarningHandler registers fn to receive each format warning as it is
// found, in source order.
func WithWarningHandler(fn func(Warning)) Option {
	return func(g *Generator) {
		g.onWarning = fn
	}
}

// WithStandalone wraps both listings in complete HTML5 pages.
// Without it the listings are the bare concatenated fragments.
func WithStandalone(page PageOptions) Option {
	return func(g *Generator) {
		p := page
		g.page = &p
	}
}

// WithStyleLoader overrides where standalone stylesheets come from.
func WithStyleLoader(loader StyleLoader) Option {
	return func(g *Generator) {
		g.styles = loader
	}
}

// WithCSS sets the standalone stylesheet directly, bypassing the style loader.
func WithCSS(css string) Option {
	return func(g *Generator) {
		g.css = &css
	}
}

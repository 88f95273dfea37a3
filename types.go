package docgen

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docgen/internal/assets"
)

// Entry kinds, derived from the declaration that follows a comment block.
const (
	KindConstructor = "constructor"
	KindStatic      = "static"
	KindMethod      = "" // instance method, rendered without a label
)

// Source format markers. These are fixed: the tool reads exactly one format.
const (
	OpenMarker         = "/**"
	CloseLine          = " */"
	ContinuationPrefix = " * "
	PrototypeMarker    = ".prototype"
	PublicMarker       = "@public"
	LineBreak          = "</br>"
	varKeyword         = "var"
)

// Warning messages written for malformed comment blocks.
const (
	WarnOpenFormat         = "Check your formatting of /**"
	WarnContinuationFormat = `error with " * " formatting`
)

// Entry is one documentation block paired with the declaration line after it.
type Entry struct {
	Kind        string // KindConstructor, KindStatic or KindMethod
	Name        string // identifier taken from the declaration
	Body        string // comment lines joined with LineBreak
	Line        int    // 1-based line of the opening marker
	Declaration string // raw declaration line
}

// Warning is a non-fatal format problem found while scanning.
type Warning struct {
	Line    int    // 1-based line that triggered the warning
	Message string // WarnOpenFormat or WarnContinuationFormat
}

// String formats the warning with its line number.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// ScanResult holds everything a single scan produced.
type ScanResult struct {
	Entries  []Entry
	Warnings []Warning

	// UnclosedLine is the opening line of a block that never closed.
	// Zero when every block closed.
	UnclosedLine int
}

// Listings holds the two rendered outputs.
type Listings struct {
	All    string // every entry, in source order
	Public string // entries whose body contains PublicMarker
}

// Input contains generation parameters.
type Input struct {
	Source string // file content; split on "\n"
	Intro  string // Markdown introduction for standalone output (optional)
}

// Result is the outcome of one generation run.
type Result struct {
	All          []byte
	Public       []byte
	Entries      []Entry
	Warnings     []Warning
	UnclosedLine int
}

// Default standalone page values.
const (
	DefaultTitle     = "Documentation"
	MaxTitleLength   = 200
	DefaultStyleName = assets.DefaultStyleName
)

// PageOptions configures standalone HTML pages.
type PageOptions struct {
	Title      string // <title> and heading; empty uses DefaultTitle
	Style      string // embedded stylesheet name; empty uses DefaultStyleName
	ShowSource bool   // render each declaration as highlighted source
}

// Validate checks that page options are usable.
// Returns nil if p is nil (nil means no standalone page).
func (p *PageOptions) Validate() error {
	if p == nil {
		return nil
	}
	if len(p.Title) > MaxTitleLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidTitle, len(p.Title), MaxTitleLength)
	}
	if strings.ContainsAny(p.Title, "\n\r") {
		return fmt.Errorf("%w: contains line break", ErrInvalidTitle)
	}
	return nil
}

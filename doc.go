// Package docgen extracts /** ... */ documentation blocks from a JavaScript
// source file and renders them as HTML listings.
//
// # Quick Start
//
//	gen, err := docgen.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, docgen.Input{Source: src})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("docAll.html", result.All, 0644)
//	os.WriteFile("doc.html", result.Public, 0644)
//
// # Source Format
//
// A block starts on a line containing "/**", continues with lines prefixed by
// " * ", and ends on a line that is exactly " */". The line right after the
// block is the declaration it documents:
//
//	/**
//	 * Sets the center.
//	 * @public
//	 */
//	ShapeGame.prototype.setCenter = function(xCenter, yCenter) {
//
// The declaration decides the entry kind:
//
//	var Foo = ...               constructor, name "Foo"
//	Bar.prototype.baz = ...     method (no label), name "Bar.baz"
//	Qux.helper = ...            static, name "Qux.helper"
//
// Malformed opening or continuation lines produce warnings, never errors.
// A block that never closes swallows the rest of the file.
//
// # Listings
//
// Each entry renders as
//
//	<i>kind </i><b>name</b></br>body</br></br>
//
// with body lines joined by "</br>". Text is not escaped. The "all" listing
// holds every entry in source order; the "public" listing holds entries whose
// body contains "@public".
//
// # Standalone Pages
//
// WithStandalone wraps both listings in complete HTML5 documents with a
// title, an embedded stylesheet, an optional Markdown introduction and,
// optionally, each declaration highlighted as source:
//
//	gen, err := docgen.NewGenerator(docgen.WithStandalone(docgen.PageOptions{
//	    Title:      "ShapeGame",
//	    ShowSource: true,
//	}))
package docgen

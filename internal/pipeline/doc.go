// Package pipeline assembles standalone HTML pages around rendered listings.
//
// The stages are:
//   - Markdown introduction to HTML via Goldmark (GFM, highlighted code fences)
//   - Declaration source highlighting via Chroma
//   - Page assembly: title, stylesheet, introduction and listing body
//
// Scanning and fragment rendering live in the root docgen package. This
// package only runs when standalone output is requested, so the default
// listings never depend on it.
package pipeline

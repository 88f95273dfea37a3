// Package assets provides the stylesheets embedded in standalone pages.
//
// Styles live under styles/{name}.css and are compiled into the binary.
// Names are validated before lookup so a style name can never address a
// file outside the embedded tree:
//
//	styles/
//	├── default.css   # serif body, labelled entries
//	└── plain.css     # minimal, close to the raw fragment listing
package assets

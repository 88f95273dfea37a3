package docgen

import "strings"

// RenderEntry formats one entry as an HTML fragment.
// Text is written as-is; no HTML escaping is applied.
func RenderEntry(e Entry) string {
	var b strings.Builder
	b.WriteString("<i>")
	b.WriteString(e.Kind)
	if e.Kind != "" {
		b.WriteString(" ")
	}
	b.WriteString("</i><b>")
	b.WriteString(e.Name)
	b.WriteString("</b>")
	b.WriteString(LineBreak)
	b.WriteString(e.Body)
	b.WriteString(LineBreak)
	b.WriteString(LineBreak)
	return b.String()
}

// IsPublic reports whether the entry belongs in the public listing.
func IsPublic(e Entry) bool {
	return strings.Contains(e.Body, PublicMarker)
}

// Render concatenates entry fragments in order into the two listings.
func Render(entries []Entry) Listings {
	var all, public strings.Builder
	for _, e := range entries {
		fragment := RenderEntry(e)
		all.WriteString(fragment)
		if IsPublic(e) {
			public.WriteString(fragment)
		}
	}
	return Listings{All: all.String(), Public: public.String()}
}

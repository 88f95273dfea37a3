package pipeline

import (
	"strings"
	"testing"
)

func TestSourceHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	h := NewSourceHighlighter()

	got, err := h.Highlight("ShapeGame.prototype.setCenter = function(xCenter, yCenter) {")
	if err != nil {
		t.Fatalf("Highlight() error = %v", err)
	}

	for _, want := range []string{`class="chroma"`, "<pre", "setCenter", "function"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\ngot: %s", want, got)
		}
	}
}

func TestSourceHighlighter_CSS(t *testing.T) {
	t.Parallel()

	css, err := NewSourceHighlighter().CSS()
	if err != nil {
		t.Fatalf("CSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("CSS() missing .chroma selector\ngot: %s", css)
	}
}

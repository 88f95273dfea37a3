package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestIntroConverter_RenderIntro(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "empty input",
			input:        "",
			wantContains: nil,
		},
		{
			name:  "heading with id",
			input: "# Shape Game",
			wantContains: []string{
				"<h1",
				`id="shape-game"`,
				"Shape Game",
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<td>",
			},
		},
		{
			name:  "fenced code is highlighted with classes",
			input: "```javascript\nvar x = 1;\n```",
			wantContains: []string{
				`class="chroma"`,
				"<pre",
			},
			wantNot: []string{
				"style=\"color",
			},
		},
		{
			name:  "raw HTML is not passed through",
			input: "<script>alert(1)</script>",
			wantNot: []string{
				"<script>",
			},
		},
	}

	conv := NewIntroConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.RenderIntro(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("RenderIntro() error = %v", err)
			}
			if tt.input == "" && got != "" {
				t.Errorf("RenderIntro(\"\") = %q, want empty", got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q\ngot: %s", not, got)
				}
			}
		})
	}
}

func TestIntroConverter_RenderIntro_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIntroConverter().RenderIntro(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

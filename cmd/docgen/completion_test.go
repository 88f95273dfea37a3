package main

// Notes:
// - GenerateCompletion: we check content markers only; the scripts are not
//   run in real shells.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        Shell
		wantContains []string
	}{
		{
			shell: ShellBash,
			wantContains: []string{
				"_docgen_completions",
				"complete -F _docgen_completions docgen",
				"--output|-o) COMPREPLY=($(compgen -d",
				`--style) COMPREPLY=($(compgen -W "default plain"`,
				"--public-name",
				"generate",
			},
		},
		{
			shell: ShellZsh,
			wantContains: []string{
				"#compdef docgen",
				"_arguments",
				"'--standalone[wrap listings in complete HTML pages]'",
				"--style[CSS style name or file path (implies --standalone)]:value:(default plain)",
				"'styles'",
			},
		},
		{
			shell: ShellFish,
			wantContains: []string{
				"complete -c docgen -f",
				"-a completion",
				"complete -c docgen -l output -s o -x -a '(__fish_complete_directories)'",
				"complete -c docgen -l config -s c -r -F",
				"complete -c docgen -l quiet -s q -d",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, Shell("tcsh"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
}

func TestExtractFlags(t *testing.T) {
	t.Parallel()

	byName := map[string]flagDef{}
	for _, f := range extractFlags() {
		byName[f.Long] = f
	}

	for _, name := range []string{"output", "public-name", "all-name", "config", "quiet", "verbose", "standalone", "title", "style", "intro", "show-source"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("flag %q missing from completion", name)
		}
	}
	if byName["verbose"].Type != flagBool || byName["verbose"].Short != "v" {
		t.Errorf("verbose = %+v, want bool with shorthand v", byName["verbose"])
	}
	if byName["intro"].Type != flagFile || byName["intro"].FileGlob != "*.md,*.markdown" {
		t.Errorf("intro = %+v, want markdown file flag", byName["intro"])
	}
	if byName["title"].Type != flagString {
		t.Errorf("title type = %v, want flagString", byName["title"].Type)
	}
}

func TestRunCompletion_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	if err := runCompletion(nil, env.Environment); err != nil {
		t.Fatalf("runCompletion() error = %v", err)
	}
	if !strings.Contains(env.stdout.String(), "Usage: docgen completion <shell>") {
		t.Errorf("stdout = %q, want usage", env.stdout.String())
	}
}

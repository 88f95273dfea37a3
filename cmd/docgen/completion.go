package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-docgen/internal/assets"
	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config": {FileGlob: "*.yaml,*.yml"},
	"intro":  {FileGlob: "*.md,*.markdown"},
	"output": {IsDir: true},
}

// extractFlags extracts flag definitions from the generate FlagSet,
// in the FlagSet's sorted order. --style completes the embedded style names.
func extractFlags() []flagDef {
	fs := buildGenerateFlagSet(&generateFlags{})

	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}
		if f.Name == "style" {
			fd.Type, fd.Values = flagEnum, assets.Styles()
		}
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.FileGlob != "":
				fd.Type, fd.FileGlob = flagFile, meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// commandNames returns the command names in a stable order.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		generateBash(w)
	case ShellZsh:
		generateZsh(w)
	case ShellFish:
		generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	return nil
}

func generateBash(w io.Writer) {
	flags := extractFlags()
	var opts []string
	for _, f := range flags {
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	fmt.Fprintln(w, "# bash completion for docgen")
	fmt.Fprintln(w, "_docgen_completions() {")
	fmt.Fprintln(w, `    local cur prev`)
	fmt.Fprintln(w, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(w, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(w, `    case "$prev" in`)
	for _, f := range flags {
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(w, "        --%s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", f.Long, strings.Join(f.Values, " "))
		case flagDir:
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", bashFlagPattern(f))
		case flagFile:
			fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", bashFlagPattern(f))
		}
	}
	fmt.Fprintln(w, `    esac`)
	fmt.Fprintln(w, `    if [[ "$cur" == -* ]]; then`)
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(opts, " "))
	fmt.Fprintln(w, `    elif [[ $COMP_CWORD -eq 1 ]]; then`)
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"$cur\") $(compgen -f -- \"$cur\"))\n", strings.Join(commandNames(), " "))
	fmt.Fprintln(w, `    else`)
	fmt.Fprintln(w, `        COMPREPLY=($(compgen -f -- "$cur"))`)
	fmt.Fprintln(w, `    fi`)
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -F _docgen_completions docgen")
}

func bashFlagPattern(f flagDef) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "--" + f.Long + "|-" + f.Short
}

func generateZsh(w io.Writer) {
	fmt.Fprintln(w, "#compdef docgen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_docgen() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "        '%s'\n", name)
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w, "    _arguments \\")
	for _, f := range extractFlags() {
		fmt.Fprintf(w, "        '--%s[%s]%s' \\\n", f.Long, zshEscape(f.Desc), zshAction(f))
	}
	fmt.Fprintln(w, "        '1: :{_describe command commands; _files}' \\")
	fmt.Fprintln(w, "        '*:file:_files'")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, `_docgen "$@"`)
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagDir:
		return ":directory:_files -/"
	case flagFile:
		return ":file:_files"
	default:
		return ":value:"
	}
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}

func generateFish(w io.Writer) {
	fmt.Fprintln(w, "# fish completion for docgen")
	fmt.Fprintln(w, "complete -c docgen -f")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "complete -c docgen -n '__fish_use_subcommand' -a %s\n", name)
	}
	fmt.Fprintln(w, "complete -c docgen -n '__fish_use_subcommand' -F")
	for _, f := range extractFlags() {
		line := "complete -c docgen -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagEnum:
			line += fmt.Sprintf(" -x -a %q", strings.Join(f.Values, " "))
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagFile:
			line += " -r -F"
		case flagString:
			line += " -x"
		}
		line += fmt.Sprintf(" -d %q", f.Desc)
		fmt.Fprintln(w, line)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells: bash, zsh, fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(docgen completion bash)\"   # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(docgen completion zsh)\"    # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:  docgen completion fish > ~/.config/fish/completions/docgen.fish")
}

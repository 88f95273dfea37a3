package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen [generate] <input> [flags]")
	fmt.Fprintln(w, "       docgen <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate     Extract /** */ blocks into HTML listings (default)")
	fmt.Fprintln(w, "  config       Print the effective configuration as YAML")
	fmt.Fprintln(w, "  styles       List embedded page styles")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docgen help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen [generate] <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extract /** */ documentation blocks from a source file and write two")
	fmt.Fprintln(w, "HTML listings: every entry, and entries marked @public.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source file (optional if config has input.file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: working directory)")
	fmt.Fprintln(w, "      --public-name <s>     Public listing name (default: doc.html)")
	fmt.Fprintln(w, "      --all-name <s>        Complete listing name (default: docAll.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Standalone pages:")
	fmt.Fprintln(w, "      --standalone          Wrap listings in complete HTML pages")
	fmt.Fprintln(w, "      --title <s>           Page title")
	fmt.Fprintln(w, "      --style <name|path>   Embedded style name or CSS file")
	fmt.Fprintln(w, "      --intro <file.md>     Markdown introduction")
	fmt.Fprintln(w, "      --show-source         Show highlighted declarations")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show line numbers and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCGEN_CONFIG, DOCGEN_INPUT, DOCGEN_OUTPUT_DIR, DOCGEN_STYLE, DOCGEN_TITLE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: docgen config [-c <name>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration generate would use, after environment overrides.")
	case "styles":
		fmt.Fprintln(env.Stdout, "Usage: docgen styles")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List the embedded styles accepted by --style.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrInvalidFlag, args[0])
	}
	return nil
}

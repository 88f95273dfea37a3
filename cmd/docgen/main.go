package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the recognized command names.
var commands = map[string]bool{
	"generate":   true,
	"config":     true,
	"styles":     true,
	"completion": true,
	"version":    true,
	"help":       true,
}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// isCommand reports whether arg names a command rather than an input file.
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches to a command and returns the process exit code.
// An argument that is not a command name runs generate, so
// "docgen file.js" behaves like "docgen generate file.js".
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := "generate", []string{}
	if len(args) > 1 {
		rest = args[1:]
		if isCommand(args[1]) {
			cmd, rest = args[1], args[2:]
		}
	}

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(ctx, rest, env)
	case "config":
		err = runConfig(rest, env)
	case "styles":
		err = runStyles(env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-docgen %s\n", Version)
	case "help":
		err = runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

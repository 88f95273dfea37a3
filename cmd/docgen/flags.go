package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds where the listings are written.
type outputFlags struct {
	dir        string
	publicName string
	allName    string
}

// pageFlags holds standalone page flags.
type pageFlags struct {
	standalone bool
	title      string
	style      string
	intro      string
	showSource bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common commonFlags
	output outputFlags
	page   pageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show line numbers and timing")
}

// addOutputFlags adds output location flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory")
	fs.StringVar(&f.publicName, "public-name", "", "public listing file name (default doc.html)")
	fs.StringVar(&f.allName, "all-name", "", "complete listing file name (default docAll.html)")
}

// addPageFlags adds standalone page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap listings in complete HTML pages")
	fs.StringVar(&f.title, "title", "", "page title (implies --standalone)")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path (implies --standalone)")
	fs.StringVar(&f.intro, "intro", "", "markdown file shown above the entries (implies --standalone)")
	fs.BoolVar(&f.showSource, "show-source", false, "show each declaration as highlighted source (implies --standalone)")
}

// buildGenerateFlagSet creates the generate FlagSet bound to f.
// Shared by parseGenerateFlags and shell completion.
func buildGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	addOutputFlags(fs, &f.output)
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
// Parse errors and usage go to stderr.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := buildGenerateFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printGenerateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/assets"
	"github.com/alnah/go-docgen/internal/config"
	"github.com/alnah/go-docgen/internal/fileutil"
	"github.com/alnah/go-docgen/internal/hints"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput           = errors.New("no input specified")
	ErrInvalidFlag       = errors.New("invalid arguments")
	ErrReadSource        = errors.New("failed to read source file")
	ErrReadIntro         = errors.New("failed to read intro file")
	ErrReadCSS           = errors.New("failed to read CSS file")
	ErrWriteOutput       = errors.New("failed to write output")
	ErrInvalidOutputName = errors.New("invalid output name")
)

// cssExtension marks a --style value as a stylesheet file.
const cssExtension = ".css"

// generateRun holds the resolved state of one generate invocation.
type generateRun struct {
	cfg        *config.Config
	inputPath  string
	publicPath string
	allPath    string
	quiet      bool
	verbose    bool
}

// runGenerate scans one source file and writes both listings.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input file, got %d", ErrInvalidFlag, len(positional))
	}

	envCfg := loadEnvConfig(env.LookupEnv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidField) {
			return fmt.Errorf("%w: %w", ErrInvalidOutputName, err)
		}
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	run := &generateRun{
		cfg:        cfg,
		inputPath:  inputPath,
		publicPath: filepath.Join(cfg.Output.Dir, cfg.Output.PublicName),
		allPath:    filepath.Join(cfg.Output.Dir, cfg.Output.AllName),
		quiet:      flags.common.quiet,
		verbose:    flags.common.verbose,
	}

	source, err := fileutil.ReadFile(inputPath)
	if err != nil {
		return withInputHint(fmt.Errorf("%w: %w", ErrReadSource, err), inputPath, env)
	}

	gen, intro, err := buildGenerator(cfg, run.warningHandler(env))
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := gen.Generate(ctx, docgen.Input{Source: source, Intro: intro})
	if err != nil {
		return fmt.Errorf("generating %s: %w", inputPath, err)
	}

	if err := run.write(result); err != nil {
		return err
	}

	run.report(result, env.Now().Sub(start), env)
	return nil
}

// loadConfig loads the config named by the flag, or DOCGEN_CONFIG.
// Without either, the defaults apply.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Any page flag turns on standalone output.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.publicName != "" {
		cfg.Output.PublicName = flags.output.publicName
	}
	if flags.output.allName != "" {
		cfg.Output.AllName = flags.output.allName
	}

	page := flags.page
	if page.title != "" {
		cfg.Page.Title = page.title
	}
	if page.style != "" {
		cfg.Page.Style = page.style
	}
	if page.intro != "" {
		cfg.Page.Intro = page.intro
	}
	if page.showSource {
		cfg.Page.ShowSource = true
	}
	if page.standalone || page.title != "" || page.style != "" || page.intro != "" || page.showSource {
		cfg.Page.Standalone = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.File != "" {
		return cfg.Input.File, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// isStylePath reports whether a style value names a CSS file rather than an
// embedded style.
func isStylePath(style string) bool {
	return fileutil.IsFilePath(style) || strings.HasSuffix(style, cssExtension)
}

// buildGenerator creates the generator for cfg and reads the intro file.
func buildGenerator(cfg *config.Config, onWarning func(docgen.Warning)) (*docgen.Generator, string, error) {
	opts := []docgen.Option{docgen.WithWarningHandler(onWarning)}
	if !cfg.Page.Standalone {
		gen, err := docgen.NewGenerator(opts...)
		return gen, "", err
	}

	page := docgen.PageOptions{
		Title:      cfg.Page.Title,
		ShowSource: cfg.Page.ShowSource,
	}
	if isStylePath(cfg.Page.Style) {
		css, err := fileutil.ReadFile(cfg.Page.Style)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrReadCSS, err)
		}
		opts = append(opts, docgen.WithCSS(css))
	} else {
		page.Style = cfg.Page.Style
	}
	opts = append(opts, docgen.WithStandalone(page))

	var intro string
	if cfg.Page.Intro != "" {
		content, err := fileutil.ReadFile(cfg.Page.Intro)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrReadIntro, err)
		}
		intro = content
	}

	gen, err := docgen.NewGenerator(opts...)
	if err != nil {
		if errors.Is(err, docgen.ErrStyleNotFound) {
			return nil, "", fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.Styles()))
		}
		return nil, "", err
	}
	return gen, intro, nil
}

// warningHandler prints format warnings to stderr as they are found.
// Quiet mode drops them; verbose mode prefixes the line number.
func (r *generateRun) warningHandler(env *Environment) func(docgen.Warning) {
	return func(w docgen.Warning) {
		switch {
		case r.quiet:
		case r.verbose:
			fmt.Fprintln(env.Stderr, w.String())
		default:
			fmt.Fprintln(env.Stderr, w.Message)
		}
	}
}

// write stores the public listing first, then the complete listing.
// Existing files are replaced.
func (r *generateRun) write(result *docgen.Result) error {
	if err := fileutil.EnsureDir(r.cfg.Output.Dir); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(r.publicPath, string(result.Public)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(r.allPath, string(result.All)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// report prints the run summary to stdout.
func (r *generateRun) report(result *docgen.Result, elapsed time.Duration, env *Environment) {
	if r.quiet {
		return
	}

	public := 0
	for _, e := range result.Entries {
		if docgen.IsPublic(e) {
			public++
		}
	}

	if r.verbose {
		if result.UnclosedLine > 0 {
			fmt.Fprintf(env.Stderr, "warning: unclosed comment block%s\n", hints.ForUnclosedComment(result.UnclosedLine))
		}
		fmt.Fprintf(env.Stdout, "%s -> %s, %s (%d entries, %d public, %d warnings, %v)\n",
			r.inputPath, r.publicPath, r.allPath,
			len(result.Entries), public, len(result.Warnings), elapsed.Round(time.Millisecond))
		return
	}

	fmt.Fprintf(env.Stdout, "Created %s (%d entries)\n", r.publicPath, public)
	fmt.Fprintf(env.Stdout, "Created %s (%d entries)\n", r.allPath, len(result.Entries))
}

// withInputHint appends a hint when the source file is missing.
func withInputHint(err error, path string, env *Environment) error {
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	wd, _ := env.Getwd()
	return fmt.Errorf("%w%s", err, hints.ForInputNotFound(path, wd))
}

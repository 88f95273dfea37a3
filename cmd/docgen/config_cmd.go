package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-docgen/internal/assets"
	flag "github.com/spf13/pflag"
)

// runConfig prints the effective configuration as YAML: the config file,
// if any, with environment overrides applied.
func runConfig(args []string, env *Environment) error {
	var common commonFlags
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	addCommonFlags(fs, &common)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	envCfg := loadEnvConfig(env.LookupEnv)
	cfg, err := loadConfig(common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	out, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}

// runStyles lists the embedded styles, marking the default.
func runStyles(env *Environment) error {
	for _, name := range assets.Styles() {
		if name == assets.DefaultStyleName {
			fmt.Fprintf(env.Stdout, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

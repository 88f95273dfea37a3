package main

import (
	"bytes"
	"testing"

	"github.com/alnah/go-docgen/internal/config"
	"github.com/google/go-cmp/cmp"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, map[string]string{
		"DOCGEN_CONFIG":     "project",
		"DOCGEN_INPUT":      "js/app.js",
		"DOCGEN_OUTPUT_DIR": "doc",
		"DOCGEN_STYLE":      "plain",
		"DOCGEN_TITLE":      "App",
	})

	got := loadEnvConfig(env.LookupEnv)
	want := &envConfig{
		ConfigPath: "project",
		Input:      "js/app.js",
		OutputDir:  "doc",
		Style:      "plain",
		Title:      "App",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  envConfig
		cfg  config.Config
		want config.Config
	}{
		{
			name: "fills empty fields",
			env:  envConfig{Input: "a.js", OutputDir: "out", Style: "plain", Title: "T"},
			want: config.Config{
				Input:  config.InputConfig{File: "a.js"},
				Output: config.OutputConfig{Dir: "out"},
				Page:   config.PageConfig{Style: "plain", Title: "T"},
			},
		},
		{
			name: "env wins over config file",
			env:  envConfig{Input: "env.js", OutputDir: "env-out", Style: "plain", Title: "Env"},
			cfg: config.Config{
				Input:  config.InputConfig{File: "cfg.js"},
				Output: config.OutputConfig{Dir: "cfg-out"},
				Page:   config.PageConfig{Style: "default", Title: "Cfg"},
			},
			want: config.Config{
				Input:  config.InputConfig{File: "env.js"},
				Output: config.OutputConfig{Dir: "env-out"},
				Page:   config.PageConfig{Style: "plain", Title: "Env"},
			},
		},
		{
			name: "unset env keeps config file",
			cfg:  config.Config{Input: config.InputConfig{File: "cfg.js"}, Page: config.PageConfig{Title: "Cfg"}},
			want: config.Config{Input: config.InputConfig{File: "cfg.js"}, Page: config.PageConfig{Title: "Cfg"}},
		},
		{
			name: "style does not enable standalone",
			env:  envConfig{Style: "plain"},
			want: config.Config{Page: config.PageConfig{Style: "plain"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			applyEnvConfig(&tt.env, &cfg)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("applyEnvConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"DOCGEN_TITLE=ok",
		"DOCGEN_TITEL=typo",
		"DOCGEN_AUTHOR=unknown",
		"DOCGENX=not ours",
	})

	want := "warning: unknown environment variable DOCGEN_AUTHOR (typo?)\n" +
		"warning: unknown environment variable DOCGEN_TITEL (typo?)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-docgen/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestDecodeStrict_Inputs - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestDecodeStrict_Inputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		want    *testConfig
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			want: &testConfig{Name: "test", Count: 42, Enabled: true},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.DecodeStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, tt.dest); diff != "" {
				t.Errorf("DecodeStrict() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields only", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.DecodeStrict([]byte("name: strict\ncount: 10"), &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(testConfig{Name: "strict", Count: 10}, cfg); diff != "" {
			t.Errorf("DecodeStrict() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown field causes error", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.DecodeStrict([]byte("name: test\nunknown_field: value"), &cfg)
		if !errors.Is(err, yamlutil.ErrSyntax) {
			t.Fatalf("error = %v, want ErrSyntax", err)
		}
		if !strings.Contains(err.Error(), "unknown_field") {
			t.Errorf("error %q should name the unknown field", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestInputTooLarge - Size limit
// ---------------------------------------------------------------------------

func TestInputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var cfg testConfig
	if err := yamlutil.DecodeStrict(data, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Serializes Go structs to YAML
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Encode(testConfig{Name: "docs", Count: 2})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var back testConfig
	if err := yamlutil.DecodeStrict(out, &back); err != nil {
		t.Fatalf("DecodeStrict() error = %v", err)
	}
	if back.Name != "docs" || back.Count != 2 {
		t.Errorf("decoded = %+v, want Name=docs Count=2", back)
	}
}

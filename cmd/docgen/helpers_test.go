package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment with buffered output, a fixed clock, and
// the given DOCGEN_* variables.
func newTestEnv(t *testing.T, vars map[string]string) *testEnv {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return fixed },
			Stdout: stdout,
			Stderr: stderr,
			Getwd:  func() (string, error) { return "/work", nil },
			LookupEnv: func(key string) (string, bool) {
				v, ok := vars[key]
				return v, ok
			},
			Environ: func() []string {
				var kv []string
				for k, v := range vars {
					kv = append(kv, k+"="+v)
				}
				return kv
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// sampleSource has one public constructor, one private method, and one
// open-marker warning on line 7.
const sampleSource = `/**
 * The board.
 * @public
 */
var Board = function() {};

/** Clears it.
 */
Board.prototype.clear = function() {};
`

const (
	wantPublic = "<i>constructor </i><b>Board</b></br>The board.</br>@public</br></br>"
	wantAll    = wantPublic + "<i></i><b>Board.clear</b></br></br></br>"
)

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForNoInput returns hints when no source file was given.
func ForNoInput() string {
	return format("pass a source file, e.g. docgen js/shapegame.js, or set input.file in a config")
}

// ForInputNotFound returns hints for a source file that does not exist.
// Relative paths are shown resolved against workDir.
func ForInputNotFound(path, workDir string) string {
	if filepath.IsAbs(path) || workDir == "" {
		return format("check that the file exists")
	}
	return format(fmt.Sprintf("looked for %s", filepath.Join(workDir, path)))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-docgen/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnclosedComment explains why entries after an unclosed block are missing.
func ForUnclosedComment(line int) string {
	if line <= 0 {
		return ""
	}
	return format(fmt.Sprintf("comment opened at line %d has no \" */\" line; later entries were skipped", line))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

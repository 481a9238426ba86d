package tuning

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var SheetsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a tuning sheet by name, preferring a file on disk next to the
// binary so edits apply without a rebuild, falling back to the embedded
// copy.
func Load(name string) ([]byte, error) {
	clean := cleanSheetPath(name)
	if data, err := os.ReadFile(diskSheetPath(clean)); err == nil {
		return data, nil
	}
	return SheetsFS.ReadFile(clean)
}

// LoadScript reads a bot script, disk first then embedded.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("tuning", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ModTime reports the on-disk modification time of a sheet, if present.
func ModTime(name string) (time.Time, bool) {
	clean := cleanSheetPath(name)
	info, err := os.Stat(diskSheetPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanSheetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "tuning/")
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "tuning/scripts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "tuning/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskSheetPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}

// ABOUTME: Tests for config path resolution.
// ABOUTME: Pins the XDG layout for global files and the flat layout for project files.

package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGlobalPaths_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	if got, want := GlobalConfigFile(), filepath.Join(base, "keywire", "settings.json"); got != want {
		t.Errorf("GlobalConfigFile() = %q, want %q", got, want)
	}
	if got, want := GlobalProfilesFile(), filepath.Join(base, "keywire", "profiles.yaml"); got != want {
		t.Errorf("GlobalProfilesFile() = %q, want %q", got, want)
	}
}

func TestProjectPaths(t *testing.T) {
	t.Parallel()

	root := "/some/project"
	if got, want := ProjectConfigFile(root), filepath.Join(root, ".keywire.json"); got != want {
		t.Errorf("ProjectConfigFile() = %q, want %q", got, want)
	}
	if got, want := ProjectProfilesFile(root), filepath.Join(root, "keywire.yaml"); got != want {
		t.Errorf("ProjectProfilesFile() = %q, want %q", got, want)
	}
}

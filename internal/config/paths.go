// ABOUTME: Standard filesystem paths for keywire configuration.
// ABOUTME: Global files live under the user config dir (XDG on Linux); project files sit in the root.

package config

import (
	"os"
	"path/filepath"
)

const appDirName = "keywire"

// GlobalDir returns the user-global config directory,
// $XDG_CONFIG_HOME/keywire on Linux via os.UserConfigDir.
func GlobalDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(base, appDirName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, ".keywire.json")
}

// GlobalProfilesFile returns the path to the global profile overrides.
func GlobalProfilesFile() string {
	return filepath.Join(GlobalDir(), "profiles.yaml")
}

// ProjectProfilesFile returns the path to the project-local profile overrides.
func ProjectProfilesFile(projectRoot string) string {
	return filepath.Join(projectRoot, "keywire.yaml")
}

// Package configpaths resolves where configuration files live on each
// platform.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appDir = "gamepad-tester"

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appDir), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDir), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appDir), nil
		}
		return "", errors.New("HOME not set")
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds per-format candidate config paths. A user
// supplied path is routed to the loader matching its extension and takes
// priority over the working directory, config home and system-wide
// locations.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	bases := []string{appDir, "config"}

	if wd, err := os.Getwd(); err == nil {
		for _, base := range bases {
			add(&jsonPaths, filepath.Join(wd, base+".json"))
			add(&yamlPaths, filepath.Join(wd, base+".yaml"))
			add(&yamlPaths, filepath.Join(wd, base+".yml"))
			add(&tomlPaths, filepath.Join(wd, base+".toml"))
		}
	}

	if dir, err := DefaultConfigDir(); err == nil {
		for _, base := range bases {
			add(&jsonPaths, filepath.Join(dir, base+".json"))
			add(&yamlPaths, filepath.Join(dir, base+".yaml"))
			add(&yamlPaths, filepath.Join(dir, base+".yml"))
			add(&tomlPaths, filepath.Join(dir, base+".toml"))
		}
	}

	if runtime.GOOS != "windows" {
		for _, base := range bases {
			add(&jsonPaths, filepath.Join("/etc", appDir, base+".json"))
			add(&yamlPaths, filepath.Join("/etc", appDir, base+".yaml"))
			add(&tomlPaths, filepath.Join("/etc", appDir, base+".toml"))
		}
	}

	return jsonPaths, yamlPaths, tomlPaths
}

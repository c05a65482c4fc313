// Package config resolves platform-specific locations for zstatus files
package config

import (
	"os"
	"path/filepath"
)

const (
	appName         = "zstatus"
	projectFileName = ".zstatus.yaml"
	userFileName    = "config.yaml"
)

// EnvConfig overrides every other config location when set
const EnvConfig = "ZSTATUS_CONFIG"

// UserConfigDir returns the directory holding the user's config file
func UserConfigDir() string {
	return UserConfigDirWithPlatform(DefaultPlatform)
}

// UserConfigDirWithPlatform allows injecting a custom platform provider for testing
func UserConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %APPDATA%\zstatus\
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/zstatus/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		// $XDG_CONFIG_HOME/zstatus/ or ~/.config/zstatus/
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// ConfigFileCandidates returns config file locations in lookup order
func ConfigFileCandidates() []string {
	return ConfigFileCandidatesWithPlatform(DefaultPlatform)
}

// ConfigFileCandidatesWithPlatform allows injecting a custom platform provider for testing
func ConfigFileCandidatesWithPlatform(platform PlatformProvider) []string {
	var candidates []string
	if env := platform.GetEnv(EnvConfig); env != "" {
		candidates = append(candidates, env)
	}
	if wd, err := platform.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, projectFileName))
	}
	if dir := UserConfigDirWithPlatform(platform); dir != "" {
		candidates = append(candidates, filepath.Join(dir, userFileName))
	}
	return candidates
}

// UserCacheDir returns the application cache directory for results and logs
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		// %LOCALAPPDATA%\zstatus\
		localAppData := platform.GetEnv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.UserHomeDir()
			return filepath.Join(home, "."+appName)
		}
		return filepath.Join(localAppData, appName)
	case "darwin":
		// ~/Library/Caches/zstatus/
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, "Library", "Caches", appName)
	default:
		// $XDG_CACHE_HOME/zstatus/ or ~/.cache/zstatus/
		if xdg := platform.GetEnv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, _ := platform.UserHomeDir()
		return filepath.Join(home, ".cache", appName)
	}
}

// ResultsDBPath returns the path to the SQLite widget result database
func ResultsDBPath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, "results.db")
}

// LogFilePath returns the default log file path
func LogFilePath() string {
	cacheDir := UserCacheDir()
	_ = os.MkdirAll(cacheDir, 0755)
	return filepath.Join(cacheDir, appName+".log")
}

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// configFiles are the config file names searched for, in order of preference.
var configFiles = []string{
	".jsplex.yml",
	".jsplex.yaml",
}

var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig searches upward from startDir for a config file.
// It returns an empty string if there is none. The search stops at VCS roots
// and at the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}
		for _, name := range configFiles {
			if path := filepath.Join(dir, name); fileExists(path) {
				return path, nil
			}
		}
		if isVCSRoot(dir) {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load returns the configuration from the file at path or, if path is
// empty, from the project config file found upward from workDir, with the
// environment overrides applied. Without a config file, Load returns the
// defaults with the environment overrides.
func Load(ctx context.Context, path, workDir string) (*Config, string, error) {
	if path == "" {
		var err error
		if path, err = FindProjectConfig(ctx, workDir); err != nil {
			return nil, "", err
		}
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, path, err
		}
	}
	if err := LoadFromEnv(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

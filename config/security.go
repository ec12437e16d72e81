package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360/semwire/errors"
)

const (
	maxConfigSize = 1 << 20 // 1MB max graph file size
	maxPathLen    = 4096
)

var allowedExtensions = []string{".yaml", ".yml", ".json"}

// validateConfigPath does basic path validation
func validateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty config path", errors.ErrInvalidConfig)
	}

	if len(path) > maxPathLen {
		return fmt.Errorf("%w: path too long: %d > %d", errors.ErrInvalidConfig, len(path), maxPathLen)
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("cannot get working directory: %w", err)
		}
		absPath, err := filepath.Abs(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("cannot resolve absolute path: %w", err)
		}
		// Relative paths stay within the working directory
		relPath, err := filepath.Rel(cwd, absPath)
		if err != nil || strings.HasPrefix(relPath, "..") {
			return fmt.Errorf("%w: path traversal not allowed: %s resolves outside working directory",
				errors.ErrInvalidConfig, path)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: only YAML or JSON graph files allowed: %s", errors.ErrInvalidConfig, path)
}

// safeReadFile reads a config file with security validation
func safeReadFile(path string) ([]byte, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errors.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("cannot stat config file: %w", err)
	}

	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: config file too large: %d bytes > %d", errors.ErrInvalidConfig, info.Size(), maxConfigSize)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", errors.ErrInvalidConfig, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	return data, nil
}

package utils

import (
	"os"
	"path/filepath"
)

// ConfigFileNames are the config file names looked up in a project root, in priority order
var ConfigFileNames = []string{"tig.yaml", "tig.yml", ".tig.yaml", ".tig.yml"}

const (
	packageManifest = "package.json"
	maxIterations   = 20 // Prevent walking up forever
)

// FindConfigFile returns the first config file found in dir, or an empty string
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot searches upward from path for a directory holding a config
// file or a package.json. A directory with a config file wins over a closer
// package.json, so nested workspaces share the settings of their monorepo.
// It returns an empty string if neither is found.
func FindProjectRoot(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if isDir, err := IsDirectory(absPath); err != nil || !isDir {
		dir = filepath.Dir(absPath)
	}

	packageRoot := ""
	for i := 0; i < maxIterations; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}
		if packageRoot == "" {
			if _, err := os.Stat(filepath.Join(dir, packageManifest)); err == nil {
				packageRoot = dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return packageRoot
}

package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions lists the JavaScript and TypeScript file extensions that are processed
var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".mts": true,
	".cts": true,
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
}

// skippedDirs are never descended into
var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

// IsSourceFile checks if a file is a JavaScript or TypeScript source file (includes test files)
func IsSourceFile(filename string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(filename))]
}

// FindSourceFiles recursively finds all JavaScript and TypeScript source files in a directory
func FindSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency, output and hidden directories (but not the root directory)
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if skippedDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(d.Name()) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

package utils

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// FindProjectRoot traverses up directories to find the project's .envseal
// root. Returns the path to the project root if found, empty string
// otherwise. Stops searching one level above the user's home directory.
func FindProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for {
		if currentDir == path.Join(homeDir, "..") {
			return "", nil
		}

		sealDir := filepath.Join(currentDir, ".envseal")
		fileInfo, err := os.Stat(sealDir)
		if err == nil {
			if fileInfo.IsDir() {
				return currentDir, nil
			}
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("error checking for .envseal directory at %s: %w", currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the filesystem root.
			return "", nil
		}
		currentDir = parentDir
	}
}

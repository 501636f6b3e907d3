// Package utils provides shared utility functions for the envseal application.
//
// # Filesystem Utilities
//
//   - FindProjectRoot: walks up directories to find the .envseal project root
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - Pluralize: formats a count with its noun
package utils

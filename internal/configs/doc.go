// Package configs manages user and project configuration for envseal.
//
// # User Configuration
//
// Stored at <user-config-dir>/envseal/config.toml. Holds the user's UUID
// (generated on first use, used by the audit trail) and their default
// environment name.
//
// # Project Configuration
//
// Stored at <project-root>/.envseal/config.toml. Holds the project UUID and
// name plus the list of known environments. The project root is discovered
// by walking up from the working directory until a .envseal directory is
// found (see utils.FindProjectRoot).
//
// # Settings
//
// Derived paths (base .env location, .envseal directory) live in the
// package-level settings structs, initialized once per process and refreshed
// by InitProjectSettings.
package configs

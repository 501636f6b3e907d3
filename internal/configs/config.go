package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type UserConfig struct {
	User User `toml:"user"`
}

type User struct {
	UUID               string `toml:"user_uuid"`
	DefaultEnvironment string `toml:"default_environment"`
}

type ProjectConfig struct {
	Project      Project  `toml:"project"`
	Environments []string `toml:"environments"`
}

type Project struct {
	UUID string `toml:"project_uuid"`
	Name string `toml:"name"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields an empty config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserEnvsealSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserEnvsealSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig ensures the user configuration exists and has a UUID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.User.UUID == "" {
		config.User.UUID = uuid.New().String()
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save user config: %w", err)
		}
	}

	return config, nil
}

// LoadProjectConfig loads the project configuration.
// Note: Caller should ensure InitProjectSettings is called first.
func LoadProjectConfig() (*ProjectConfig, error) {
	configPath := filepath.Join(ProjectEnvsealSettings.ProjectSealPath, "config.toml")

	config := &ProjectConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	return config, nil
}

// SaveProjectConfig saves the project configuration.
// Note: Caller should ensure InitProjectSettings is called first.
func SaveProjectConfig(config *ProjectConfig) error {
	configPath := filepath.Join(ProjectEnvsealSettings.ProjectSealPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save project config: %w", err)
	}

	return nil
}

// GenerateProjectUUID generates a new UUID for the project.
func GenerateProjectUUID() string {
	return uuid.New().String()
}

// HasEnvironment reports whether the project config lists the environment.
func (pc *ProjectConfig) HasEnvironment(name string) bool {
	for _, env := range pc.Environments {
		if env == name {
			return true
		}
	}
	return false
}

// AddEnvironment appends the environment if it is not already listed.
func (pc *ProjectConfig) AddEnvironment(name string) {
	if !pc.HasEnvironment(name) {
		pc.Environments = append(pc.Environments, name)
	}
}

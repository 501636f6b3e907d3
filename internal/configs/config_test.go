package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureUserConfigCreatesUUID(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserEnvsealSettings.UserConfigsPath
	UserEnvsealSettings.UserConfigsPath = tempDir
	defer func() {
		UserEnvsealSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}

	if config.User.UUID == "" {
		t.Fatal("EnsureUserConfig did not generate UUID")
	}
	if len(config.User.UUID) != 36 {
		t.Fatalf("Expected UUID length 36, got %d", len(config.User.UUID))
	}

	loadedConfig, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}

	if loadedConfig.User.UUID != config.User.UUID {
		t.Errorf("UUID mismatch: expected %q, got %q", config.User.UUID, loadedConfig.User.UUID)
	}
}

func TestLoadUserConfigNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserEnvsealSettings.UserConfigsPath
	UserEnvsealSettings.UserConfigsPath = tempDir
	defer func() {
		UserEnvsealSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}

	if config == nil {
		t.Fatal("Expected config to not be nil")
	}
	if config.User.UUID != "" {
		t.Errorf("Expected empty UUID, got %q", config.User.UUID)
	}
}

func TestSaveAndLoadProjectConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldSettings := ProjectEnvsealSettings
	ProjectEnvsealSettings = &ProjectSettings{
		ProjectName:     "test-project",
		ProjectPath:     tempDir,
		ProjectSealPath: filepath.Join(tempDir, ".envseal"),
		BaseEnvPath:     filepath.Join(tempDir, ".env"),
	}
	defer func() {
		ProjectEnvsealSettings = oldSettings
	}()

	if err := os.MkdirAll(ProjectEnvsealSettings.ProjectSealPath, 0700); err != nil {
		t.Fatalf("Failed to create .envseal directory: %v", err)
	}

	config := &ProjectConfig{
		Project: Project{
			UUID: GenerateProjectUUID(),
			Name: "test-project",
		},
		Environments: []string{"dev", "prod"},
	}

	if err := SaveProjectConfig(config); err != nil {
		t.Fatalf("SaveProjectConfig failed: %v", err)
	}

	loadedConfig, err := LoadProjectConfig()
	if err != nil {
		t.Fatalf("LoadProjectConfig failed: %v", err)
	}

	if loadedConfig.Project.UUID != config.Project.UUID {
		t.Errorf("Expected UUID %q, got %q", config.Project.UUID, loadedConfig.Project.UUID)
	}
	if len(loadedConfig.Environments) != 2 {
		t.Errorf("Expected 2 environments, got %d", len(loadedConfig.Environments))
	}
}

func TestAddEnvironment(t *testing.T) {
	config := &ProjectConfig{}

	config.AddEnvironment("dev")
	config.AddEnvironment("prod")
	config.AddEnvironment("dev")

	if len(config.Environments) != 2 {
		t.Errorf("Environments = %v, want [dev prod]", config.Environments)
	}
	if !config.HasEnvironment("dev") || !config.HasEnvironment("prod") {
		t.Error("HasEnvironment missing an added environment")
	}
	if config.HasEnvironment("staging") {
		t.Error("HasEnvironment reported an environment that was never added")
	}
}

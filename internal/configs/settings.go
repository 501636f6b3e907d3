package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sinugotshifhiwa4/envseal/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	Username        string
}

type ProjectSettings struct {
	ProjectName     string
	ProjectPath     string
	ProjectSealPath string
	BaseEnvPath     string
}

var (
	UserEnvsealSettings    *UserSettings
	ProjectEnvsealSettings *ProjectSettings
)

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// User settings are independent of the current repository.
	UserEnvsealSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "envseal"),
		Username:        username,
	}
	ProjectEnvsealSettings = &ProjectSettings{}
}

// InitProjectSettings locates the project root and fills in the derived
// paths. ProjectPath stays empty when the project has not been initialized.
func InitProjectSettings() error {
	projectPath, err := utils.FindProjectRoot()
	if err != nil {
		return fmt.Errorf("error getting project root: %w", err)
	}

	if projectPath == "" {
		ProjectEnvsealSettings = &ProjectSettings{}
		return nil
	}

	ProjectEnvsealSettings = &ProjectSettings{
		ProjectName:     filepath.Base(projectPath),
		ProjectPath:     projectPath,
		ProjectSealPath: filepath.Join(projectPath, ".envseal"),
		BaseEnvPath:     filepath.Join(projectPath, ".env"),
	}

	return nil
}

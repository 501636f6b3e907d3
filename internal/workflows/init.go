package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sinugotshifhiwa4/envseal/internal/audit"
	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// InitResult contains the outcome of project initialization.
type InitResult struct {
	// ProjectPath is the directory that became the project root.
	ProjectPath string

	// ProjectUUID identifies the new project.
	ProjectUUID string
}

// Init sets up the current directory as an envseal project: it creates the
// .envseal directory with a project config and ensures the base .env file
// exists.
//
// Returns ErrProjectAlreadyInitialized when run inside an existing project.
func Init(ctx context.Context, st store.ConfigStore, reporter logger.Reporter) (*InitResult, error) {
	if err := configs.InitProjectSettings(); err != nil {
		return nil, fmt.Errorf("initializing project settings: %w", err)
	}

	if configs.ProjectEnvsealSettings.ProjectPath != "" {
		return nil, fmt.Errorf("%w: %s", eserrors.ErrProjectAlreadyInitialized, configs.ProjectEnvsealSettings.ProjectPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	sealPath := filepath.Join(wd, ".envseal")
	if err := os.MkdirAll(sealPath, 0700); err != nil {
		return nil, fmt.Errorf("creating %s: %w", sealPath, err)
	}

	// Re-discover now that .envseal exists, so derived paths are set.
	if err := configs.InitProjectSettings(); err != nil {
		return nil, fmt.Errorf("initializing project settings: %w", err)
	}

	projectConfig := &configs.ProjectConfig{
		Project: configs.Project{
			UUID: configs.GenerateProjectUUID(),
			Name: filepath.Base(wd),
		},
	}
	if err := configs.SaveProjectConfig(projectConfig); err != nil {
		return nil, fmt.Errorf("saving project config: %w", err)
	}

	if err := st.EnsureExists(configs.ProjectEnvsealSettings.BaseEnvPath); err != nil {
		return nil, fmt.Errorf("creating base env file: %w", err)
	}

	reporter.Infof("initialized envseal project at %s", wd)

	auditEntry := audit.LogWithUser("init")
	auditEntry.ProjectName = projectConfig.Project.Name
	auditEntry.ProjectUUID = projectConfig.Project.UUID
	audit.Log(auditEntry)

	return &InitResult{
		ProjectPath: wd,
		ProjectUUID: projectConfig.Project.UUID,
	}, nil
}

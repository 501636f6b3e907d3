package workflows

import (
	"context"
	"fmt"

	"github.com/sinugotshifhiwa4/envseal/internal/audit"
	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/sinugotshifhiwa4/envseal/internal/secrets"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// KeygenOptions configures the keygen workflow.
type KeygenOptions struct {
	// Environment names the root secret to mint (SECRET_KEY_<ENV>).
	Environment string

	// Force overwrites an existing root secret for the environment.
	Force bool
}

// KeygenResult contains the outcome of a keygen operation.
type KeygenResult struct {
	// KeyName is the name the secret was stored under.
	KeyName string

	// StorePath is the base document holding the secret.
	StorePath string

	// Existed reports whether a secret for this environment was already present.
	Existed bool
}

// Keygen mints a new root secret for the environment and upserts it into
// the base .env file. Unless Force is set, an existing secret is left
// untouched and the call fails — overwriting the root secret orphans every
// document encrypted under it.
//
// The generated secret is persisted and deliberately not returned: callers
// read it from the base store when they need it.
func Keygen(ctx context.Context, opts KeygenOptions, st store.ConfigStore, reporter logger.Reporter) (*KeygenResult, error) {
	env, _, err := prepareEnvironment(opts.Environment)
	if err != nil {
		return nil, err
	}

	keyName := secrets.KeyNameForEnvironment(env)
	basePath := configs.ProjectEnvsealSettings.BaseEnvPath

	result := &KeygenResult{
		KeyName:   keyName,
		StorePath: basePath,
	}

	if _, err := secrets.LookupSecretKey(keyName, basePath, st); err == nil {
		result.Existed = true
		if !opts.Force {
			return result, fmt.Errorf("%w: %s (use --force to replace)", eserrors.ErrSecretKeyExists, keyName)
		}
	}

	if _, err := secrets.GenerateAndStore(keyName, basePath, st, reporter); err != nil {
		return nil, err
	}

	// Record the environment in the project config so status and completion
	// can list it. Best-effort: a config write failure doesn't undo the key.
	projectConfig, err := configs.LoadProjectConfig()
	if err == nil && !projectConfig.HasEnvironment(env) {
		projectConfig.AddEnvironment(env)
		if err := configs.SaveProjectConfig(projectConfig); err != nil {
			reporter.Warnf("failed to record environment %s in project config: %v", env, err)
		}
	}

	auditEntry := audit.LogWithUser("keygen")
	auditEntry.Environment = env
	auditEntry.KeyName = keyName
	audit.Log(auditEntry)

	return result, nil
}

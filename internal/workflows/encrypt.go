package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/sinugotshifhiwa4/envseal/internal/audit"
	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	"github.com/sinugotshifhiwa4/envseal/internal/envfile"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/sinugotshifhiwa4/envseal/internal/secrets"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Environment names the root secret (SECRET_KEY_<ENV>) and the default
	// document (.env.<env>).
	Environment string

	// FilePatterns specifies documents to encrypt. If empty, the
	// environment's default document is used.
	FilePatterns []string

	// DryRun previews which documents would be encrypted without writing.
	DryRun bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Documents lists the files that were transformed.
	Documents []string

	// ValuesSealed counts the key=value pairs whose values were encrypted.
	ValuesSealed int

	// ProjectPath is the root path of the project.
	ProjectPath string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// Encrypt seals every value in the environment's documents.
//
// It loads the environment's root secret from the base .env file, then runs
// the line transform over each document and writes the result back through
// the store.
//
// Returns ErrProjectNotInitialized if the project has no .envseal directory.
// Returns ErrSecretKeyNotFound if the environment has no root secret yet.
// Returns ErrNoFilesFound if no documents match the specified patterns.
func Encrypt(ctx context.Context, opts EncryptOptions, st store.ConfigStore, reporter logger.Reporter) (*EncryptResult, error) {
	env, projectPath, err := prepareEnvironment(opts.Environment)
	if err != nil {
		return nil, err
	}

	documents, err := resolveDocuments(opts.FilePatterns, projectPath, env)
	if err != nil {
		return nil, err
	}

	secretKey, err := secrets.LookupSecretKey(secrets.KeyNameForEnvironment(env), configs.ProjectEnvsealSettings.BaseEnvPath, st)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{
		Documents:   documents,
		ProjectPath: projectPath,
		DryRun:      opts.DryRun,
	}

	for _, doc := range documents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := st.Read(doc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", doc, err)
		}

		lines := strings.Split(text, "\n")
		result.ValuesSealed += countPairs(lines)

		if opts.DryRun {
			continue
		}

		transformed, err := secrets.EncryptDocument(lines, secretKey, reporter)
		if err != nil {
			return nil, fmt.Errorf("encrypting %s: %w", doc, err)
		}

		if err := st.Write(doc, strings.Join(transformed, "\n")); err != nil {
			return nil, fmt.Errorf("writing %s: %w", doc, err)
		}
	}

	if !opts.DryRun {
		auditEntry := audit.LogWithUser("encrypt")
		auditEntry.Environment = env
		auditEntry.Files = result.Documents
		auditEntry.ValuesCount = result.ValuesSealed
		audit.Log(auditEntry)
	}

	return result, nil
}

// prepareEnvironment initializes project settings and validates the
// environment name. Shared by the encrypt, decrypt, and get workflows.
func prepareEnvironment(env string) (string, string, error) {
	if err := configs.InitProjectSettings(); err != nil {
		return "", "", fmt.Errorf("initializing project settings: %w", err)
	}

	projectPath := configs.ProjectEnvsealSettings.ProjectPath
	if projectPath == "" {
		return "", "", eserrors.ErrProjectNotInitialized
	}

	if env == "" {
		return "", "", fmt.Errorf("%w: environment name is required", eserrors.ErrInvalidParameter)
	}

	return env, projectPath, nil
}

// resolveDocuments finds documents from patterns, or falls back to the
// environment's default document.
func resolveDocuments(patterns []string, projectPath, env string) ([]string, error) {
	if len(patterns) > 0 {
		resolved, err := secrets.ResolveDocuments(patterns, projectPath)
		if err != nil {
			return nil, fmt.Errorf("resolving file patterns: %w", err)
		}
		return resolved, nil
	}

	defaultDoc := secrets.DefaultDocument(projectPath, env)
	resolved, err := secrets.ResolveDocuments([]string{".env." + env}, projectPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", eserrors.ErrNoFilesFound, defaultDoc)
	}
	return resolved, nil
}

func countPairs(lines []string) int {
	count := 0
	for _, line := range envfile.ParseLines(lines).Lines {
		if line.Kind == envfile.Pair {
			count++
		}
	}
	return count
}

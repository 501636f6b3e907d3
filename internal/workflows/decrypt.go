package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/sinugotshifhiwa4/envseal/internal/audit"
	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/sinugotshifhiwa4/envseal/internal/secrets"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Environment names the root secret and the default document.
	Environment string

	// FilePatterns specifies documents to decrypt. If empty, the
	// environment's default document is used.
	FilePatterns []string

	// DryRun previews which documents would be decrypted without writing.
	DryRun bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// Documents lists the files that were transformed.
	Documents []string

	// ProjectPath is the root path of the project.
	ProjectPath string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// Decrypt resolves every sealed value in the environment's documents back
// to plaintext and writes the documents through the store.
//
// A tampered envelope or a wrong root secret fails the whole document with
// ErrIntegrityCheckFailed before any plaintext is written.
func Decrypt(ctx context.Context, opts DecryptOptions, st store.ConfigStore, reporter logger.Reporter) (*DecryptResult, error) {
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

	result := &DecryptResult{
		Documents:   documents,
		ProjectPath: projectPath,
		DryRun:      opts.DryRun,
	}

	for _, doc := range documents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if opts.DryRun {
			continue
		}

		text, err := st.Read(doc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", doc, err)
		}

		transformed, err := secrets.DecryptDocument(strings.Split(text, "\n"), secretKey, reporter)
		if err != nil {
			return nil, fmt.Errorf("decrypting %s: %w", doc, err)
		}

		if err := st.Write(doc, strings.Join(transformed, "\n")); err != nil {
			return nil, fmt.Errorf("writing %s: %w", doc, err)
		}
	}

	if !opts.DryRun {
		auditEntry := audit.LogWithUser("decrypt")
		auditEntry.Environment = env
		auditEntry.Files = result.Documents
		audit.Log(auditEntry)
	}

	return result, nil
}

package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	"github.com/sinugotshifhiwa4/envseal/internal/envfile"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/sinugotshifhiwa4/envseal/internal/secrets"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// GetOptions configures the single-value get workflow.
type GetOptions struct {
	// Environment names the root secret and the default document.
	Environment string

	// Key is the configuration key to resolve.
	Key string

	// Document overrides the environment's default document path.
	Document string
}

// GetResult contains the resolved value.
type GetResult struct {
	Key      string
	Value    string
	Document string
}

// Get resolves one configuration key from an encrypted document. This is
// the single-value read path: the document on disk stays encrypted and only
// the requested value is decrypted in memory.
func Get(ctx context.Context, opts GetOptions, st store.ConfigStore, reporter logger.Reporter) (*GetResult, error) {
	env, projectPath, err := prepareEnvironment(opts.Environment)
	if err != nil {
		return nil, err
	}

	if opts.Key == "" {
		return nil, fmt.Errorf("%w: key is required", eserrors.ErrInvalidParameter)
	}

	document := opts.Document
	if document == "" {
		document = secrets.DefaultDocument(projectPath, env)
	}

	secretKey, err := secrets.LookupSecretKey(secrets.KeyNameForEnvironment(env), configs.ProjectEnvsealSettings.BaseEnvPath, st)
	if err != nil {
		return nil, err
	}

	text, err := st.Read(document)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", document, err)
	}

	serialized, ok := envfile.ParseLines(strings.Split(text, "\n")).Get(opts.Key)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", eserrors.ErrKeyNotFound, opts.Key, document)
	}

	value, err := secrets.DecryptValue(serialized, secretKey)
	if err != nil {
		reporter.Errorf("get %s: %v", opts.Key, err)
		return nil, fmt.Errorf("resolving %s: %w", opts.Key, err)
	}

	return &GetResult{
		Key:      opts.Key,
		Value:    value,
		Document: document,
	}, nil
}

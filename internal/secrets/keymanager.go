package secrets

import (
	"fmt"
	"strings"

	"github.com/sinugotshifhiwa4/envseal/internal/crypto"
	"github.com/sinugotshifhiwa4/envseal/internal/envfile"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// KeyNameForEnvironment returns the conventional root secret name for an
// environment: SECRET_KEY_<NAME> with the environment upper-cased.
func KeyNameForEnvironment(env string) string {
	return "SECRET_KEY_" + strings.ToUpper(env)
}

// GenerateAndStore mints a new root secret and persists it under keyName in
// the base configuration document at storePath. If a line for keyName
// already exists its value is replaced in place; otherwise a new line is
// appended. The generated secret is returned to the caller and not retained.
//
// This is the only path that mutates the root secret store.
func GenerateAndStore(keyName, storePath string, st store.ConfigStore, reporter logger.Reporter) (string, error) {
	secret, err := crypto.GenerateKey(crypto.DefaultKeyLength)
	if err != nil {
		reporter.Errorf("keygen: %v", err)
		return "", fmt.Errorf("%w: %v", eserrors.ErrKeyGenerationFailed, err)
	}
	if secret == "" {
		reporter.Errorf("keygen: generator returned no key material")
		return "", eserrors.ErrKeyGenerationFailed
	}

	if err := st.EnsureExists(storePath); err != nil {
		reporter.Errorf("keygen: %v", err)
		return "", fmt.Errorf("preparing key store: %w", err)
	}

	text, err := st.Read(storePath)
	if err != nil {
		reporter.Errorf("keygen: %v", err)
		return "", fmt.Errorf("reading key store: %w", err)
	}

	doc := envfile.Parse(text)
	doc.Upsert(keyName, secret)

	if err := st.Write(storePath, doc.Serialize()); err != nil {
		reporter.Errorf("keygen: %v", err)
		return "", fmt.Errorf("writing key store: %w", err)
	}

	reporter.Infof("stored root secret %s in %s", keyName, storePath)
	return secret, nil
}

// LookupSecretKey reads the root secret for keyName from the base document
// at storePath. Returns ErrSecretKeyNotFound when the key has no value.
func LookupSecretKey(keyName, storePath string, st store.ConfigStore) (string, error) {
	text, err := st.Read(storePath)
	if err != nil {
		return "", fmt.Errorf("reading key store: %w", err)
	}

	secret, ok := envfile.Parse(text).Get(keyName)
	if !ok || secret == "" {
		return "", fmt.Errorf("%w: %s", eserrors.ErrSecretKeyNotFound, keyName)
	}
	return secret, nil
}

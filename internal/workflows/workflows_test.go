package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
)

// testReporter captures reported events for assertions.
type testReporter struct {
	events []string
}

func (r *testReporter) Infof(msg string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(msg, args...))
}

func (r *testReporter) Warnf(msg string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(msg, args...))
}

func (r *testReporter) Errorf(msg string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(msg, args...))
}

// setupWorkspace switches the working directory to a fresh temp dir and
// redirects user config writes away from the real config dir.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}

	oldUserPath := configs.UserEnvsealSettings.UserConfigsPath
	configs.UserEnvsealSettings.UserConfigsPath = filepath.Join(dir, "user-config")

	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
		configs.UserEnvsealSettings.UserConfigsPath = oldUserPath
		configs.ProjectEnvsealSettings = &configs.ProjectSettings{}
	})

	return dir
}

// setupInitializedProject sets up a workspace with an initialized project.
func setupInitializedProject(t *testing.T) string {
	t.Helper()
	dir := setupWorkspace(t)

	if _, err := Init(context.Background(), store.NewFileStore(), &testReporter{}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	return dir
}

func TestInitCreatesProject(t *testing.T) {
	dir := setupWorkspace(t)
	st := store.NewFileStore()

	result, err := Init(context.Background(), st, &testReporter{})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if result.ProjectUUID == "" {
		t.Error("Init did not assign a project UUID")
	}

	if _, err := os.Stat(filepath.Join(dir, ".envseal", "config.toml")); err != nil {
		t.Errorf("project config missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); err != nil {
		t.Errorf("base env file missing: %v", err)
	}
}

func TestInitRejectsSecondRun(t *testing.T) {
	setupInitializedProject(t)

	_, err := Init(context.Background(), store.NewFileStore(), &testReporter{})
	if !errors.Is(err, eserrors.ErrProjectAlreadyInitialized) {
		t.Errorf("second Init = %v, expected ErrProjectAlreadyInitialized", err)
	}
}

func TestKeygenStoresRootSecret(t *testing.T) {
	dir := setupInitializedProject(t)
	st := store.NewFileStore()

	result, err := Keygen(context.Background(), KeygenOptions{Environment: "dev"}, st, &testReporter{})
	if err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}

	if result.KeyName != "SECRET_KEY_DEV" {
		t.Errorf("KeyName = %q", result.KeyName)
	}

	text, err := st.Read(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !strings.Contains(text, "SECRET_KEY_DEV=") {
		t.Errorf("base env missing root secret: %q", text)
	}
}

func TestKeygenRefusesOverwriteWithoutForce(t *testing.T) {
	setupInitializedProject(t)
	st := store.NewFileStore()

	if _, err := Keygen(context.Background(), KeygenOptions{Environment: "dev"}, st, &testReporter{}); err != nil {
		t.Fatalf("first Keygen failed: %v", err)
	}

	_, err := Keygen(context.Background(), KeygenOptions{Environment: "dev"}, st, &testReporter{})
	if !errors.Is(err, eserrors.ErrSecretKeyExists) {
		t.Errorf("second Keygen = %v, expected ErrSecretKeyExists", err)
	}

	if _, err := Keygen(context.Background(), KeygenOptions{Environment: "dev", Force: true}, st, &testReporter{}); err != nil {
		t.Errorf("forced Keygen failed: %v", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	dir := setupInitializedProject(t)
	st := store.NewFileStore()
	reporter := &testReporter{}
	ctx := context.Background()

	if _, err := Keygen(ctx, KeygenOptions{Environment: "dev"}, st, reporter); err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}

	original := "# credentials\nDB_URL=postgres://localhost/app\nAPI_KEY=sk-123\n\nFLAG=\n"
	docPath := filepath.Join(dir, ".env.dev")
	if err := st.Write(docPath, original); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	encResult, err := Encrypt(ctx, EncryptOptions{Environment: "dev"}, st, reporter)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if encResult.ValuesSealed != 2 {
		t.Errorf("ValuesSealed = %d, want 2", encResult.ValuesSealed)
	}

	sealed, err := st.Read(docPath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if strings.Contains(sealed, "postgres://localhost/app") {
		t.Error("plaintext still present after encrypt")
	}
	if !strings.Contains(sealed, "# credentials") {
		t.Error("comment line not preserved")
	}
	if !strings.Contains(sealed, "FLAG=\n") {
		t.Error("bare key not preserved")
	}

	// Single-value resolution against the sealed document.
	getResult, err := Get(ctx, GetOptions{Environment: "dev", Key: "API_KEY"}, st, reporter)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if getResult.Value != "sk-123" {
		t.Errorf("Get value = %q, want %q", getResult.Value, "sk-123")
	}

	if _, err := Decrypt(ctx, DecryptOptions{Environment: "dev"}, st, reporter); err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	restored, err := st.Read(docPath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if restored != original {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", restored, original)
	}
}

func TestEncryptDryRunWritesNothing(t *testing.T) {
	dir := setupInitializedProject(t)
	st := store.NewFileStore()
	ctx := context.Background()

	if _, err := Keygen(ctx, KeygenOptions{Environment: "dev"}, st, &testReporter{}); err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}

	original := "A=1\n"
	docPath := filepath.Join(dir, ".env.dev")
	if err := st.Write(docPath, original); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	result, err := Encrypt(ctx, EncryptOptions{Environment: "dev", DryRun: true}, st, &testReporter{})
	if err != nil {
		t.Fatalf("Encrypt dry-run failed: %v", err)
	}
	if !result.DryRun || result.ValuesSealed != 1 {
		t.Errorf("result = %+v", result)
	}

	text, err := st.Read(docPath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if text != original {
		t.Errorf("dry-run modified the document: %q", text)
	}
}

func TestEncryptWithoutKeygen(t *testing.T) {
	dir := setupInitializedProject(t)
	st := store.NewFileStore()

	if err := st.Write(filepath.Join(dir, ".env.dev"), "A=1\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	_, err := Encrypt(context.Background(), EncryptOptions{Environment: "dev"}, st, &testReporter{})
	if !errors.Is(err, eserrors.ErrSecretKeyNotFound) {
		t.Errorf("Encrypt without root secret = %v, expected ErrSecretKeyNotFound", err)
	}
}

func TestEncryptOutsideProject(t *testing.T) {
	setupWorkspace(t)

	_, err := Encrypt(context.Background(), EncryptOptions{Environment: "dev"}, store.NewFileStore(), &testReporter{})
	if !errors.Is(err, eserrors.ErrProjectNotInitialized) {
		t.Errorf("Encrypt outside project = %v, expected ErrProjectNotInitialized", err)
	}
}

func TestEncryptMissingDocument(t *testing.T) {
	setupInitializedProject(t)
	st := store.NewFileStore()

	if _, err := Keygen(context.Background(), KeygenOptions{Environment: "qa"}, st, &testReporter{}); err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}

	_, err := Encrypt(context.Background(), EncryptOptions{Environment: "qa"}, st, &testReporter{})
	if !errors.Is(err, eserrors.ErrNoFilesFound) {
		t.Errorf("Encrypt with no document = %v, expected ErrNoFilesFound", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	dir := setupInitializedProject(t)
	st := store.NewFileStore()
	ctx := context.Background()

	if _, err := Keygen(ctx, KeygenOptions{Environment: "dev"}, st, &testReporter{}); err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}
	if err := st.Write(filepath.Join(dir, ".env.dev"), "A=1\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := Encrypt(ctx, EncryptOptions{Environment: "dev"}, st, &testReporter{}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err := Get(ctx, GetOptions{Environment: "dev", Key: "MISSING"}, st, &testReporter{})
	if !errors.Is(err, eserrors.ErrKeyNotFound) {
		t.Errorf("Get missing key = %v, expected ErrKeyNotFound", err)
	}
}

func TestDecryptWrongEnvironmentKey(t *testing.T) {
	dir := setupInitializedProject(t)
	st := store.NewFileStore()
	ctx := context.Background()

	for _, env := range []string{"dev", "prod"} {
		if _, err := Keygen(ctx, KeygenOptions{Environment: env}, st, &testReporter{}); err != nil {
			t.Fatalf("Keygen %s failed: %v", env, err)
		}
	}

	if err := st.Write(filepath.Join(dir, ".env.dev"), "A=1\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := Encrypt(ctx, EncryptOptions{Environment: "dev"}, st, &testReporter{}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Decrypting the dev document with prod's root secret must fail the
	// integrity check, not produce garbage plaintext.
	_, err := Decrypt(ctx, DecryptOptions{Environment: "prod", FilePatterns: []string{".env.dev"}}, st, &testReporter{})
	if !errors.Is(err, eserrors.ErrIntegrityCheckFailed) {
		t.Errorf("cross-environment decrypt = %v, expected ErrIntegrityCheckFailed", err)
	}
}

package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sinugotshifhiwa4/envseal/internal/configs"
)

func setupAuditProject(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	oldSettings := configs.ProjectEnvsealSettings
	configs.ProjectEnvsealSettings = &configs.ProjectSettings{
		ProjectName:     "audit-test",
		ProjectPath:     tempDir,
		ProjectSealPath: filepath.Join(tempDir, ".envseal"),
		BaseEnvPath:     filepath.Join(tempDir, ".env"),
	}
	t.Cleanup(func() {
		configs.ProjectEnvsealSettings = oldSettings
	})

	if err := os.MkdirAll(configs.ProjectEnvsealSettings.ProjectSealPath, 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	return tempDir
}

func TestLogAndReadEntries(t *testing.T) {
	setupAuditProject(t)

	Log(Entry{Operation: "encrypt", Environment: "dev", ValuesCount: 3})
	Log(Entry{Operation: "keygen", Environment: "dev", KeyName: "SECRET_KEY_DEV"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Operation != "encrypt" || entries[0].ValuesCount != 3 {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].KeyName != "SECRET_KEY_DEV" {
		t.Errorf("second entry = %+v", entries[1])
	}
	if entries[0].Timestamp == "" {
		t.Error("timestamp was not populated")
	}
}

func TestLogSkipsUninitializedProject(t *testing.T) {
	oldSettings := configs.ProjectEnvsealSettings
	configs.ProjectEnvsealSettings = &configs.ProjectSettings{}
	defer func() {
		configs.ProjectEnvsealSettings = oldSettings
	}()

	// Must not panic or create files anywhere.
	Log(Entry{Operation: "encrypt"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestParseEntriesSkipsMalformedLines(t *testing.T) {
	data := []byte(`{"op":"encrypt","ts":"2025-01-01T00:00:00.000000Z"}
not json at all
{"op":"decrypt","ts":"2025-01-01T00:00:01.000000Z"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Operation != "encrypt" || entries[1].Operation != "decrypt" {
		t.Errorf("entries = %+v", entries)
	}
}

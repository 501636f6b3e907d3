package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sinugotshifhiwa4/envseal/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	UserUUID  string `json:"uuid"` // UUID of user performing action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Environment string   `json:"environment,omitempty"` // For encrypt/decrypt/keygen.
	Files       []string `json:"files,omitempty"`       // For encrypt/decrypt.
	ValuesCount int      `json:"values_count,omitempty"`
	KeyName     string   `json:"key_name,omitempty"`     // For keygen.
	ProjectName string   `json:"project_name,omitempty"` // For init.
	ProjectUUID string   `json:"project_uuid,omitempty"` // For init.
}

// Log appends an entry to the audit log. Logging is best-effort: operations
// must not fail because audit logging failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		// Project not initialized, skip logging.
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser is a convenience function that populates the user UUID from config.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op}

	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return entry
	}

	entry.UserUUID = userConfig.User.UUID
	return entry
}

// LogPath returns the path to the audit log file.
// Returns empty string if the project is not initialized.
func LogPath() string {
	sealPath := configs.ProjectEnvsealSettings.ProjectSealPath
	if sealPath == "" {
		return ""
	}
	return filepath.Join(sealPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

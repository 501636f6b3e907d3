// Package cmd testing utilities shared between integration tests: setting up
// temporary project environments, capturing output, and resetting the global
// flag state between runs.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sinugotshifhiwa4/envseal/internal/configs"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
)

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetKeygenCommandState()
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetGetCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// setupTestEnvironment moves the test into a temp project directory and
// redirects user settings away from the real config dir.
func setupTestEnvironment(t *testing.T, tempDir, tempUserDir, originalWd string, originalUserSettings *configs.UserSettings) {
	t.Helper()

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserEnvsealSettings = originalUserSettings
		configs.ProjectEnvsealSettings = &configs.ProjectSettings{}
		ResetGlobalState()
	})

	configs.UserEnvsealSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		Username:        "testuser",
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to copy captured stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to copy captured stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCommand executes the root command with the given arguments in verbose
// mode so final messages reach the captured output.
func runCommand(args ...string) (string, error) {
	return captureOutput(func() error {
		RootCmd.SetArgs(append(args, "--verbose"))
		return RootCmd.Execute()
	})
}

// initializeProject runs the init command in the current directory.
func initializeProject(t *testing.T) {
	t.Helper()
	if _, err := runCommand("init"); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}
}

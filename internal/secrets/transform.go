package secrets

import (
	"fmt"
	"strings"

	"github.com/sinugotshifhiwa4/envseal/internal/crypto"
	"github.com/sinugotshifhiwa4/envseal/internal/envfile"
	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
)

// EncryptDocument transforms a configuration document line by line. Values
// of key=value pairs are replaced with serialized crypto envelopes; blank
// lines, comments, and bare keys pass through verbatim. Malformed lines
// (no '=' separator) are dropped from the output and reported as one
// aggregated diagnostic event — they never abort the transform.
//
// Returns ErrEmptyDocument when every input line is blank.
func EncryptDocument(lines []string, secretKey string, reporter logger.Reporter) ([]string, error) {
	doc, err := parseNonEmpty(lines)
	if err != nil {
		reporter.Errorf("encrypt document: %v", err)
		return nil, err
	}

	out := make([]string, 0, len(lines))
	var diagnostics []string

	for i, line := range doc.Lines {
		switch line.Kind {
		case envfile.Malformed:
			diagnostics = append(diagnostics, malformedDiagnostic(i, line.Text))
		case envfile.Pair:
			envelope, err := crypto.Encrypt(line.Value, secretKey)
			if err != nil {
				reporter.Errorf("encrypt document: line %d (%s): %v", i+1, line.Key, err)
				return nil, fmt.Errorf("encrypting value for %s: %w", line.Key, err)
			}
			serialized, err := envelope.Marshal()
			if err != nil {
				reporter.Errorf("encrypt document: line %d (%s): %v", i+1, line.Key, err)
				return nil, fmt.Errorf("serializing envelope for %s: %w", line.Key, err)
			}
			out = append(out, line.Key+"="+serialized)
		default:
			out = append(out, line.Text)
		}
	}

	reportDiagnostics(reporter, "encrypt", diagnostics)
	return out, nil
}

// DecryptDocument is the inverse transform: every pair value is treated as a
// serialized envelope and resolved back to plaintext. Line handling mirrors
// EncryptDocument.
func DecryptDocument(lines []string, secretKey string, reporter logger.Reporter) ([]string, error) {
	doc, err := parseNonEmpty(lines)
	if err != nil {
		reporter.Errorf("decrypt document: %v", err)
		return nil, err
	}

	out := make([]string, 0, len(lines))
	var diagnostics []string

	for i, line := range doc.Lines {
		switch line.Kind {
		case envfile.Malformed:
			diagnostics = append(diagnostics, malformedDiagnostic(i, line.Text))
		case envfile.Pair:
			plaintext, err := crypto.Decrypt(line.Value, secretKey)
			if err != nil {
				reporter.Errorf("decrypt document: line %d (%s): %v", i+1, line.Key, err)
				return nil, fmt.Errorf("decrypting value for %s: %w", line.Key, err)
			}
			out = append(out, line.Key+"="+plaintext)
		default:
			out = append(out, line.Text)
		}
	}

	reportDiagnostics(reporter, "decrypt", diagnostics)
	return out, nil
}

// DecryptValue resolves a single serialized envelope back to plaintext.
// Callers reading one configuration key at a time use this instead of the
// document-level transform.
func DecryptValue(serialized, secretKey string) (string, error) {
	return crypto.Decrypt(serialized, secretKey)
}

func parseNonEmpty(lines []string) (*envfile.Document, error) {
	empty := true
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil, eserrors.ErrEmptyDocument
	}
	return envfile.ParseLines(lines), nil
}

func malformedDiagnostic(index int, text string) string {
	return fmt.Sprintf("Line %d doesn't contain any variables or has invalid format: %s", index+1, text)
}

// reportDiagnostics aggregates per-line diagnostics into a single reported
// event. Diagnostics are advisory: the transform already produced its output.
func reportDiagnostics(reporter logger.Reporter, op string, diagnostics []string) {
	if len(diagnostics) == 0 {
		return
	}
	reporter.Errorf("%s document: skipped %d malformed line(s):\n%s",
		op, len(diagnostics), strings.Join(diagnostics, "\n"))
}

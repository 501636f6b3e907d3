package cmd

import (
	"errors"
	"strings"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
	"github.com/sinugotshifhiwa4/envseal/internal/ui"
	"github.com/sinugotshifhiwa4/envseal/internal/utils"
	"github.com/sinugotshifhiwa4/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptEnvironment string
	encryptFiles       []string
	encryptDryRun      bool
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptEnvironment, "environment", "e", "", "environment whose root secret seals the documents")
	encryptCmd.Flags().StringSliceVarP(&encryptFiles, "file", "f", nil, "documents or glob patterns to encrypt (default: .env.<env>)")
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "show what would be encrypted without writing")
}

// resetEncryptCommandState resets the encrypt command's flag state for testing.
func resetEncryptCommandState() {
	encryptEnvironment = ""
	encryptFiles = nil
	encryptDryRun = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypts the values of an environment's documents in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command for environment: %s", encryptEnvironment)
		spinner, cleanup := startSpinner("Encrypting environment documents...", verbose)
		defer cleanup()

		opts := workflows.EncryptOptions{
			Environment:  encryptEnvironment,
			FilePatterns: encryptFiles,
			DryRun:       encryptDryRun,
		}

		result, err := workflows.Encrypt(cmd.Context(), opts, store.NewFileStore(), &Logger)
		if err != nil {
			if msg := transformErrorMessage(err, encryptEnvironment, "encrypt"); msg != "" {
				spinner.FinalMSG = msg
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to encrypt documents: %v", err)
		}

		Logger.Infof("Encrypt command completed successfully: %d values in %d documents", result.ValuesSealed, len(result.Documents))
		if result.DryRun {
			spinner.FinalMSG = ui.Warning.Sprint("dry-run:") + " would encrypt " + utils.Pluralize(result.ValuesSealed, "value") +
				" across:" + utils.FormatPaths(result.Documents)
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + utils.Pluralize(result.ValuesSealed, "value") +
			" across:" + utils.FormatPaths(result.Documents) +
			ui.Info.Sprint("→") + " These documents are now safe to commit to version control"
		return nil
	},
}

// transformErrorMessage maps the shared encrypt/decrypt failure modes to user
// guidance. Returns "" for errors the caller should surface directly.
func transformErrorMessage(err error, environment, operation string) string {
	switch {
	case errors.Is(err, eserrors.ErrProjectNotInitialized):
		return notInitializedMessage()
	case errors.Is(err, eserrors.ErrInvalidParameter):
		return ui.Error.Sprint("✗") + " An environment name is required\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal "+operation+" --environment <env>")
	case errors.Is(err, eserrors.ErrSecretKeyNotFound):
		return ui.Error.Sprint("✗") + " No root secret found for environment " + ui.Highlight.Sprint(environment) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal keygen --environment "+environment) + " first"
	case errors.Is(err, eserrors.ErrNoFilesFound):
		return ui.Error.Sprint("✗") + " No environment documents found\n" +
			ui.Info.Sprint("→") + " Expected " + ui.Path.Sprint(".env."+environment) + " or files matching the " + ui.Code.Sprint("--file") + " patterns"
	case errors.Is(err, eserrors.ErrIntegrityCheckFailed):
		return ui.Error.Sprint("✗") + " Integrity check failed: wrong root secret or tampered data\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, eserrors.ErrEmptyDocument):
		return ui.Error.Sprint("✗") + " Document is empty, nothing to " + operation + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case strings.Contains(err.Error(), "context canceled"):
		return ui.Warning.Sprint("!") + " Operation canceled"
	}
	return ""
}

package cmd

import (
	"github.com/sinugotshifhiwa4/envseal/internal/store"
	"github.com/sinugotshifhiwa4/envseal/internal/ui"
	"github.com/sinugotshifhiwa4/envseal/internal/utils"
	"github.com/sinugotshifhiwa4/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	decryptEnvironment string
	decryptFiles       []string
	decryptDryRun      bool
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptEnvironment, "environment", "e", "", "environment whose root secret unseals the documents")
	decryptCmd.Flags().StringSliceVarP(&decryptFiles, "file", "f", nil, "documents or glob patterns to decrypt (default: .env.<env>)")
	decryptCmd.Flags().BoolVar(&decryptDryRun, "dry-run", false, "show what would be decrypted without writing")
}

// resetDecryptCommandState resets the decrypt command's flag state for testing.
func resetDecryptCommandState() {
	decryptEnvironment = ""
	decryptFiles = nil
	decryptDryRun = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypts the values of an environment's documents in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command for environment: %s", decryptEnvironment)
		spinner, cleanup := startSpinner("Decrypting environment documents...", verbose)
		defer cleanup()

		opts := workflows.DecryptOptions{
			Environment:  decryptEnvironment,
			FilePatterns: decryptFiles,
			DryRun:       decryptDryRun,
		}

		result, err := workflows.Decrypt(cmd.Context(), opts, store.NewFileStore(), &Logger)
		if err != nil {
			if msg := transformErrorMessage(err, decryptEnvironment, "decrypt"); msg != "" {
				spinner.FinalMSG = msg
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to decrypt documents: %v", err)
		}

		Logger.Infof("Decrypt command completed successfully: %d documents", len(result.Documents))
		if result.DryRun {
			spinner.FinalMSG = ui.Warning.Sprint("dry-run:") + " would decrypt:" + utils.FormatPaths(result.Documents)
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Decrypted:" + utils.FormatPaths(result.Documents) +
			ui.Warning.Sprint("!") + " These documents now contain plaintext secrets, do not commit them"
		return nil
	},
}

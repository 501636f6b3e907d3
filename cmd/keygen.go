package cmd

import (
	"errors"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
	"github.com/sinugotshifhiwa4/envseal/internal/ui"
	"github.com/sinugotshifhiwa4/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	keygenEnvironment string
	keygenForce       bool
)

func init() {
	keygenCmd.Flags().StringVarP(&keygenEnvironment, "environment", "e", "", "environment to mint a root secret for")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "replace an existing root secret")
}

// resetKeygenCommandState resets the keygen command's flag state for testing.
func resetKeygenCommandState() {
	keygenEnvironment = ""
	keygenForce = false
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Mints a root secret for an environment and stores it in the base .env file",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command for environment: %s", keygenEnvironment)
		spinner, cleanup := startSpinner("Generating root secret...", verbose)
		defer cleanup()

		opts := workflows.KeygenOptions{
			Environment: keygenEnvironment,
			Force:       keygenForce,
		}

		result, err := workflows.Keygen(cmd.Context(), opts, store.NewFileStore(), &Logger)
		switch {
		case err == nil:
		case errors.Is(err, eserrors.ErrProjectNotInitialized):
			spinner.FinalMSG = notInitializedMessage()
			return nil
		case errors.Is(err, eserrors.ErrInvalidParameter):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " An environment name is required\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal keygen --environment <env>")
			return nil
		case errors.Is(err, eserrors.ErrSecretKeyExists):
			spinner.FinalMSG = ui.Error.Sprint("✗") + " A root secret for " + ui.Highlight.Sprint(keygenEnvironment) + " already exists\n" +
				ui.Warning.Sprint("!") + " Replacing it makes documents encrypted under the old secret unreadable\n" +
				ui.Info.Sprint("→") + " To replace it anyway, run " + ui.Code.Sprint("envseal keygen --environment "+keygenEnvironment+" --force")
			return nil
		default:
			return Logger.ErrorfAndReturn("Failed to generate root secret: %v", err)
		}

		Logger.Infof("Keygen command completed successfully: %s", result.KeyName)
		action := "created"
		if result.Existed {
			action = "replaced"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Root secret " + action + " for environment " + ui.Highlight.Sprint(keygenEnvironment) + "\n" +
			"    stored as " + ui.Highlight.Sprint(result.KeyName) + " in " + ui.Path.Sprint(result.StorePath) + "\n" +
			ui.Info.Sprint("→") + " Seal the environment's document with " + ui.Code.Sprint("envseal encrypt --environment "+keygenEnvironment)
		return nil
	},
}

// notInitializedMessage is the shared guidance for commands run outside a project.
func notInitializedMessage() string {
	return ui.Error.Sprint("✗") + " Envseal has not been initialized\n" +
		ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal init") + " first"
}

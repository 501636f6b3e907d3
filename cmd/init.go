package cmd

import (
	"errors"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
	"github.com/sinugotshifhiwa4/envseal/internal/ui"
	"github.com/sinugotshifhiwa4/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the current directory as an envseal project",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing envseal project...", verbose)
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), store.NewFileStore(), &Logger)
		if err != nil {
			if errors.Is(err, eserrors.ErrProjectAlreadyInitialized) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " An envseal project already exists here\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal keygen --environment <env>") + " to add an environment"
				return nil
			}
			return Logger.ErrorfAndReturn("Failed to initialize project: %v", err)
		}

		Logger.Infof("Init command completed successfully at %s", result.ProjectPath)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Initialized envseal project at " + ui.Path.Sprint(result.ProjectPath) + "\n" +
			"    created: " + ui.Path.Sprint(".envseal/config.toml") + "\n" +
			"    created: " + ui.Path.Sprint(".env") + " (root secrets, keep out of version control)\n" +
			ui.Info.Sprint("→") + " Next, run " + ui.Code.Sprint("envseal keygen --environment dev") + " to mint a root secret"
		return nil
	},
}

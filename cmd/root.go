package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	logger "github.com/sinugotshifhiwa4/envseal/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "envseal",
		Short: "Envseal - encrypted environment files you can commit",
		Long: `Envseal seals the values of your .env files with AES-256 so the files
can live in version control. Keys, comments, and blank lines stay readable;
only the values are encrypted.

Each environment (dev, staging, prod, ...) gets its own root secret stored
as SECRET_KEY_<ENV> in the base .env file, which stays out of version
control. The per-environment documents (.env.dev, .env.prod, ...) are
encrypted and decrypted in place.

Run 'envseal help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envseal command with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("envseal", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'envseal --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(getCmd)
}

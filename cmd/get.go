package cmd

import (
	"errors"
	"fmt"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
	"github.com/sinugotshifhiwa4/envseal/internal/store"
	"github.com/sinugotshifhiwa4/envseal/internal/ui"
	"github.com/sinugotshifhiwa4/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	getEnvironment string
	getDocument    string
)

func init() {
	getCmd.Flags().StringVarP(&getEnvironment, "environment", "e", "", "environment whose root secret unseals the value")
	getCmd.Flags().StringVarP(&getDocument, "file", "f", "", "document to read (default: .env.<env>)")
}

// resetGetCommandState resets the get command's flag state for testing.
func resetGetCommandState() {
	getEnvironment = ""
	getDocument = ""
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Decrypts a single value from an encrypted document and prints it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		Logger.Infof("Starting get command for key: %s", key)

		opts := workflows.GetOptions{
			Environment: getEnvironment,
			Key:         key,
			Document:    getDocument,
		}

		// No spinner here: the value goes to stdout alone so the command
		// composes in shell pipelines.
		result, err := workflows.Get(cmd.Context(), opts, store.NewFileStore(), &Logger)
		switch {
		case err == nil:
		case errors.Is(err, eserrors.ErrProjectNotInitialized):
			fmt.Println(notInitializedMessage())
			return nil
		case errors.Is(err, eserrors.ErrSecretKeyNotFound):
			fmt.Println(ui.Error.Sprint("✗") + " No root secret found for environment " + ui.Highlight.Sprint(getEnvironment) + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envseal keygen --environment "+getEnvironment) + " first")
			return nil
		case errors.Is(err, eserrors.ErrKeyNotFound):
			fmt.Println(ui.Error.Sprint("✗") + " Key " + ui.Highlight.Sprint(key) + " not found in " + ui.Path.Sprint(documentLabel(opts)))
			return nil
		default:
			return Logger.ErrorfAndReturn("Failed to resolve %s: %v", key, err)
		}

		fmt.Println(result.Value)
		return nil
	},
}

func documentLabel(opts workflows.GetOptions) string {
	if opts.Document != "" {
		return opts.Document
	}
	return ".env." + opts.Environment
}

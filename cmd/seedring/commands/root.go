package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"seedring/internal/app"
)

var (
	home    string
	user    string
	testing bool
	verbose bool
	wire    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "seedring",
		Short: "Mnemonic-backed key management CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".seedring")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			wire, err = app.NewWire(app.Config{
				Home:    home,
				User:    user,
				Testing: testing,
				Verbose: verbose,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "keyring dir (default ~/.seedring)")
	root.PersistentFlags().StringVar(&user, "user", "", "key namespace (default built-in user)")
	root.PersistentFlags().BoolVar(&testing, "testing", false, "use the isolated test namespace")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		generateCmd(),
		importCmd(),
		listCmd(),
		firstCmd(),
		deleteCmd(),
		wipeCmd(),
		passphraseCmd(),
		mnemonicCmd(),
	)
	return root.Execute()
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seedring/internal/crypto"
)

func importCmd() *cobra.Command {
	var seedPassphrase string

	cmd := &cobra.Command{
		Use:   "import <word>...",
		Short: "Store a key from an existing mnemonic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic := strings.Join(args, " ")
			key, err := wire.Keys.Add(mnemonic, seedPassphrase)
			if err != nil {
				return err
			}
			fp := crypto.Fingerprint(key.PublicKey())
			fmt.Printf("Imported key with fingerprint %d\n", fp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&seedPassphrase, "passphrase", "p", "", "optional seed passphrase")
	return cmd
}

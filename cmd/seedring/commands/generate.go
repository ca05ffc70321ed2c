package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedring/internal/crypto"
)

func generateCmd() *cobra.Command {
	var seedPassphrase string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh 24-word mnemonic and store its key",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := crypto.GenerateMnemonic()
			if err != nil {
				return err
			}
			key, err := wire.Keys.Add(mnemonic, seedPassphrase)
			if err != nil {
				return err
			}
			fp := crypto.Fingerprint(key.PublicKey())
			fmt.Printf("Generated key with fingerprint %d\n", fp)
			fmt.Printf("Mnemonic (keep this safe):\n%s\n", mnemonic)
			return nil
		},
	}
	cmd.Flags().StringVarP(&seedPassphrase, "passphrase", "p", "", "optional seed passphrase")
	return cmd
}

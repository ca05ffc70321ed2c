package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedring/internal/crypto"
)

func mnemonicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Print a fresh mnemonic without storing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := crypto.GenerateMnemonic()
			if err != nil {
				return err
			}
			fmt.Println(mnemonic)
			return nil
		},
	}
}

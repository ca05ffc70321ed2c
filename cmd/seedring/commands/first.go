package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedring/internal/crypto"
	"seedring/internal/domain"
)

func firstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "first",
		Short: "Print the first stored key's fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, ok, err := wire.Keys.FirstPublicKey()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("No keys stored")
				return nil
			}
			fmt.Println(domain.Fingerprint(crypto.Fingerprint(pub)))
			return nil
		},
	}
}

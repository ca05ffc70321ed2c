package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedring/internal/crypto"
	"seedring/internal/domain"
)

func listCmd() *cobra.Command {
	var (
		showMnemonic bool
		passphrases  []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the fingerprint of every stored key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showMnemonic {
				records, err := wire.Keys.AllKeys(passphrases)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Println("No keys accessible")
					return nil
				}
				for _, record := range records {
					mnemonic, err := crypto.MnemonicFromEntropy(record.Entropy)
					if err != nil {
						return err
					}
					fp := crypto.Fingerprint(record.Key.PublicKey())
					fmt.Printf("%s\n  %s\n", domain.Fingerprint(fp), mnemonic)
				}
				return nil
			}

			keys, err := wire.Keys.PublicKeys()
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				fmt.Println("No keys stored")
				return nil
			}
			for _, pub := range keys {
				fmt.Println(domain.Fingerprint(crypto.Fingerprint(pub)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMnemonic, "show-mnemonic", false, "also print each key's mnemonic")
	cmd.Flags().StringArrayVarP(&passphrases, "passphrase", "p", nil, "candidate seed passphrases, highest priority first")
	return cmd
}

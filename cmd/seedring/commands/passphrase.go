package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedring/internal/unlock"
)

func passphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Manage the keyring master passphrase",
	}
	cmd.AddCommand(passphraseSetCmd(), passphraseRemoveCmd())
	return cmd
}

func passphraseSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Set or rotate the keyring master passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := ""
			has, err := wire.Store.HasMasterPassphrase()
			if err != nil {
				return err
			}
			if has {
				current, err = unlock.TerminalPrompt("Current Passphrase:")
				if err != nil {
					return err
				}
			}

			next, err := unlock.TerminalPrompt("New Passphrase:")
			if err != nil {
				return err
			}
			confirm, err := unlock.TerminalPrompt("Confirm Passphrase:")
			if err != nil {
				return err
			}
			if next != confirm {
				return fmt.Errorf("passphrases do not match")
			}

			if err := wire.Store.SetMasterPassphrase(current, next, true); err != nil {
				return err
			}
			fmt.Println("Master passphrase set")
			return nil
		},
	}
}

func passphraseRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the keyring master passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := unlock.TerminalPrompt("Current Passphrase:")
			if err != nil {
				return err
			}
			if err := wire.Store.RemoveMasterPassphrase(current); err != nil {
				return err
			}
			fmt.Println("Master passphrase removed")
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"seedring/internal/domain"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <fingerprint>",
		Short: "Remove keys by fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fingerprint %q", args[0])
			}
			removed, err := wire.Keys.DeleteByFingerprint(domain.Fingerprint(raw))
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Println("No matching key")
				return nil
			}
			fmt.Printf("Removed %d key(s)\n", removed)
			return nil
		},
	}
}

func wipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wipe",
		Short: "Remove every key in the namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Keys.DeleteAll(); err != nil {
				return err
			}
			fmt.Println("Keychain wiped")
			return nil
		},
	}
}

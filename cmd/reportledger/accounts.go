package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Print the location-to-settlement-account table in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadAccounts()
			if err != nil {
				return err
			}

			codes := table.Codes()
			sort.Strings(codes)
			for _, code := range codes {
				acct, _ := table.Lookup(code)
				fmt.Printf("%-8s %s\n", code, acct)
			}

			fallback, _ := table.Lookup("")
			fmt.Printf("\nUnknown locations fall back to: %s\n", fallback)
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"redbank/core"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "manage the address registry",
}

var setAddressCmd = &cobra.Command{
	Use:   "set <type> <address>",
	Short: "register the address of a role, owner only",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addressType := core.AddressType(args[0])
		if !addressType.Valid() {
			return fmt.Errorf("unknown address type %q, expect one of %v", args[0], core.AddressTypes)
		}

		caller, _ := cmd.Flags().GetString("caller")
		if caller == "" {
			caller = cfg.App.Owner
		}

		database := provideDatabase()
		defer database.Close()

		_, registry := provideLedgerService(database)
		if err := registry.Set(cmd.Context(), caller, addressType, args[1]); err != nil {
			return err
		}

		cmd.Println(addressType, args[1])
		return nil
	},
}

var listAddressesCmd = &cobra.Command{
	Use:   "list",
	Short: "list registered addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		database := provideDatabase()
		defer database.Close()

		_, registry := provideLedgerService(database)
		addresses, err := registry.All(cmd.Context())
		if err != nil {
			return err
		}

		for _, a := range addresses {
			cmd.Printf("%-20s %s\n", a.Type, a.Address)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
	addressCmd.AddCommand(setAddressCmd, listAddressesCmd)

	setAddressCmd.Flags().String("caller", "", "caller, defaults to app.owner")
}

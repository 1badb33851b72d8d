package cmd

import (
	"redbank/handler/views"

	"github.com/spf13/cobra"
)

var positionCmd = &cobra.Command{
	Use:   "position <user>",
	Short: "show the collaterals, debts and health of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		user := args[0]

		database := provideDatabase()
		defer database.Close()

		ledger, _ := provideLedgerService(database)

		collaterals, err := ledger.UserCollaterals(ctx, user)
		if err != nil {
			return err
		}

		debts, err := ledger.UserDebts(ctx, user)
		if err != nil {
			return err
		}

		position, err := ledger.UserPosition(ctx, user)
		if err != nil {
			return err
		}

		view := views.UserPosition(user, collaterals, debts, position)
		return printJSON(cmd, view)
	},
}

func init() {
	rootCmd.AddCommand(positionCmd)
}

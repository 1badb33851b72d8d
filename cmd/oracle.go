package cmd

import (
	"redbank/service/oracle"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "manage fixed price sources",
}

var setPriceCmd = &cobra.Command{
	Use:   "set-price <denom> <price>",
	Short: "set the fixed price of a denom, owner or admin only",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := decimal.NewFromString(args[1])
		if err != nil {
			return err
		}

		caller, _ := cmd.Flags().GetString("caller")
		if caller == "" {
			caller = cfg.App.Owner
		}

		database := provideDatabase()
		defer database.Close()

		if err := oracle.SetPrice(cmd.Context(), provideSystem(), providePriceStore(database), caller, args[0], price); err != nil {
			return err
		}

		cmd.Println(args[0], price)
		return nil
	},
}

var listPricesCmd = &cobra.Command{
	Use:   "list",
	Short: "list fixed price sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		database := provideDatabase()
		defer database.Close()

		prices, err := providePriceStore(database).All(cmd.Context())
		if err != nil {
			return err
		}

		for _, p := range prices {
			cmd.Printf("%-12s %s\n", p.Denom, p.Price)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(oracleCmd)
	oracleCmd.AddCommand(setPriceCmd, listPricesCmd)

	setPriceCmd.Flags().String("caller", "", "caller, defaults to app.owner")
}

package cmd

import (
	"encoding/json"
	"redbank/core"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var marketCmd = &cobra.Command{
	Use:     "market",
	Aliases: []string{"m"},
	Short:   "init and inspect markets",
}

var initMarketCmd = &cobra.Command{
	Use:   "init <denom>",
	Short: "init a market, owner only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := assetParamsFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		database := provideDatabase()
		defer database.Close()

		caller, _ := cmd.Flags().GetString("caller")
		if caller == "" {
			caller = cfg.App.Owner
		}

		ledger, _ := provideLedgerService(database)
		market, err := ledger.InitAsset(cmd.Context(), caller, args[0], *params)
		if err != nil {
			return err
		}

		return printJSON(cmd, market)
	},
}

var listMarketsCmd = &cobra.Command{
	Use:   "list",
	Short: "list markets with their current rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		database := provideDatabase()
		defer database.Close()

		ledger, _ := provideLedgerService(database)
		markets, err := ledger.Markets(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range markets {
			cmd.Printf("%-12s liquidity %s debt %s utilization %s borrow rate %s liquidity rate %s\n",
				m.Denom, m.TotalLiquidity, m.TotalDebt, m.UtilizationRate.StringFixed(4),
				m.BorrowRate.StringFixed(4), m.LiquidityRate.StringFixed(4))
		}

		return nil
	},
}

var showMarketCmd = &cobra.Command{
	Use:   "show <denom>",
	Short: "show a market",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database := provideDatabase()
		defer database.Close()

		ledger, _ := provideLedgerService(database)
		market, err := ledger.Market(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd, market)
	},
}

func assetParamsFromFlags(flags *pflag.FlagSet) (*core.AssetParams, error) {
	read := func(name string) (decimal.Decimal, error) {
		v, _ := flags.GetString(name)
		return decimal.NewFromString(v)
	}

	var (
		params core.AssetParams
		err    error
	)

	fields := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"reserve-factor", &params.ReserveFactor},
		{"max-ltv", &params.MaxLoanToValue},
		{"liquidation-threshold", &params.LiquidationThreshold},
		{"liquidation-bonus", &params.LiquidationBonus},
		{"optimal-utilization", &params.InterestRateModel.OptimalUtilizationRate},
		{"base", &params.InterestRateModel.Base},
		{"slope1", &params.InterestRateModel.Slope1},
		{"slope2", &params.InterestRateModel.Slope2},
	}

	for _, f := range fields {
		if *f.dst, err = read(f.name); err != nil {
			return nil, err
		}
	}

	if v, _ := flags.GetString("deposit-cap"); v != "" {
		depositCap, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}

		params.DepositCap = decimal.NewNullDecimal(depositCap)
	}

	params.DepositEnabled, _ = flags.GetBool("deposit-enabled")
	params.BorrowEnabled, _ = flags.GetBool("borrow-enabled")
	return &params, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(marketCmd)
	marketCmd.AddCommand(initMarketCmd, listMarketsCmd, showMarketCmd)

	flags := initMarketCmd.Flags()
	flags.String("caller", "", "caller, defaults to app.owner")
	flags.String("reserve-factor", "0.2", "reserve factor")
	flags.String("max-ltv", "0.6", "max loan to value")
	flags.String("liquidation-threshold", "0.8", "liquidation threshold")
	flags.String("liquidation-bonus", "0.1", "liquidation bonus")
	flags.String("optimal-utilization", "0.1", "optimal utilization rate")
	flags.String("base", "0.3", "base borrow rate")
	flags.String("slope1", "0.25", "borrow rate slope below the optimal utilization")
	flags.String("slope2", "0.3", "borrow rate slope above the optimal utilization")
	flags.String("deposit-cap", "", "deposit cap, unset means no cap")
	flags.Bool("deposit-enabled", true, "enable deposits")
	flags.Bool("borrow-enabled", true, "enable borrows")
}

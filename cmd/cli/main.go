package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"stocksuggest/cmd"
	"stocksuggest/internal/app"
	"stocksuggest/internal/domain"

	"github.com/spf13/cobra"
)

func main() {
	var (
		amount        float64
		strategyNames []string
		modeName      string
	)

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Compute a one-shot portfolio suggestion against live market data",
		RunE: func(c *cobra.Command, args []string) error {
			strategies := []domain.Strategy{}
			for _, name := range strategyNames {
				strategy, err := domain.NewStrategy(name)
				if err != nil {
					return err
				}
				strategies = append(strategies, *strategy)
			}

			mode, err := domain.NewResolutionMode(modeName)
			if err != nil {
				return err
			}

			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}

			result, err := apiHandler.SuggestionHandler.SuggestPortfolio(context.Background(), app.SuggestPortfolioInput{
				Amount:     amount,
				Strategies: strategies,
				Mode:       *mode,
			})
			if err != nil {
				return err
			}

			out := map[string]interface{}{
				"holdings":             result.Allocation.Holdings,
				"leftoverCashUsd":      result.Allocation.LeftoverCash.Round(2).InexactFloat64(),
				"currentTotalValueUsd": result.CurrentTotalValue.Round(2).InexactFloat64(),
				"weeklyValueTrend":     result.WeeklyTrend,
			}
			bytes, err := json.MarshalIndent(out, "", "    ")
			if err != nil {
				return err
			}
			fmt.Println(string(bytes))

			return nil
		},
	}
	suggestCmd.Flags().Float64Var(&amount, "amount", 0, "investment amount in USD")
	suggestCmd.Flags().StringArrayVar(&strategyNames, "strategy", nil, "strategy name (repeat for a second strategy)")
	suggestCmd.Flags().StringVar(&modeName, "mode", string(domain.ResolutionMode_Screening), "resolution mode: static or screening")

	rootCmd := &cobra.Command{
		Use:   "stocksuggest",
		Short: "Stock portfolio suggestion engine",
	}
	rootCmd.AddCommand(suggestCmd)

	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
	"github.com/iwvelando/mortgage-affordability/pkg/output"
	"github.com/iwvelando/mortgage-affordability/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Compute the monthly payment breakdown for a single price and rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, logger, err := loadConfigAndLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		outputFormat := resolveOutputFormat(cmd, conf)
		if err := validation.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}

		price, _ := cmd.Flags().GetFloat64("price")
		rate, _ := cmd.Flags().GetFloat64("rate")

		assumptions := conf.Assumptions.WithDefaults()
		for _, warning := range validation.ValidateAssumptions(assumptions) {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		breakdown, err := mortgage.MonthlyPayment(price, rate, assumptions)
		if err != nil {
			return fmt.Errorf("failed to compute monthly payment: %w", err)
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.BreakdownFormat(price, rate, breakdown)
		case constants.OutputFormatCSV:
			output.BreakdownCsvFormat(breakdown)
		}

		return nil
	},
}

func init() {
	paymentCmd.Flags().Float64("price", 0, "purchase price in dollars")
	paymentCmd.Flags().Float64("rate", 0, "annual interest rate as a fraction of 1 (0.065 for 6.5%)")
	paymentCmd.Flags().String("output-format", "", "output format (pretty or csv)")
	_ = paymentCmd.MarkFlagRequired("price")
	_ = paymentCmd.MarkFlagRequired("rate")
}

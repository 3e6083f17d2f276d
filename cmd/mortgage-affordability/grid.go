package main

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/internal/grid"
	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/output"
	"github.com/iwvelando/mortgage-affordability/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Evaluate the affordability grid over the configured price and rate ranges",
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

		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		result, err := grid.Evaluate(logger, *conf)
		if err != nil {
			return fmt.Errorf("failed to evaluate affordability grid: %w", err)
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(result)
		case constants.OutputFormatCSV:
			output.CsvFormat(result)
		}

		return nil
	},
}

func init() {
	gridCmd.Flags().String("output-format", "", "output format (pretty or csv)")
}

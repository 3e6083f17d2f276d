// Package grid defines the data structures related to an affordability grid
// and includes functions for evaluating the grid.
package grid

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-affordability/internal/config"
	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/mathutil"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
	"go.uber.org/zap"
)

// Grid holds the total monthly payment for every combination of purchase
// price and annual interest rate. Cells[i][j] corresponds to Prices[i] and
// Rates[j].
type Grid struct {
	Prices []float64   `json:"prices"`
	Rates  []float64   `json:"rates"`
	Cells  [][]float64 `json:"cells"`
}

// Evaluate expands the configured price and rate axes and computes the total
// monthly payment at every grid point. Each cell equals what MonthlyPayment
// returns for the same price and rate.
func Evaluate(logger *zap.Logger, conf config.Configuration) (*Grid, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()

	prices, err := conf.Grid.Prices.Values()
	if err != nil {
		return nil, fmt.Errorf("error expanding price range, %s", err)
	}

	rates, err := conf.Grid.Rates.Values()
	if err != nil {
		return nil, fmt.Errorf("error expanding rate range, %s", err)
	}

	// Rates carry accumulated step error from the expansion; rounding keeps
	// axis values stable for labeling and lookups.
	for j := range rates {
		rates[j] = mathutil.RoundTo(rates[j], constants.RateDecimals)
	}

	assumptions := conf.Assumptions.WithDefaults()
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}

	result := &Grid{
		Prices: prices,
		Rates:  rates,
		Cells:  make([][]float64, len(prices)),
	}
	for i, price := range prices {
		result.Cells[i] = make([]float64, len(rates))
		for j, rate := range rates {
			breakdown, err := mortgage.MonthlyPayment(price, rate, assumptions)
			if err != nil {
				return nil, err
			}
			result.Cells[i][j] = breakdown.Total
		}
	}

	logger.Debug("evaluated affordability grid",
		zap.String("op", "grid.Evaluate"),
		zap.Int("priceCount", len(prices)),
		zap.Int("rateCount", len(rates)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/iwvelando/mortgage-affordability/pkg/mortgage"
	"github.com/iwvelando/mortgage-affordability/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-affordability.
type Configuration struct {
	Assumptions mortgage.Assumptions `yaml:"assumptions,omitempty"`
	Grid        GridConfig           `yaml:"grid,omitempty"`
	Logging     LoggingConfig        `yaml:"logging,omitempty"`
	Output      OutputConfig         `yaml:"output,omitempty"`
}

// GridConfig holds the price and rate axes swept by the grid evaluator.
type GridConfig struct {
	Prices mortgage.Range `yaml:"prices,omitempty"`
	Rates  mortgage.Range `yaml:"rates,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys absent from the file fall back to the defaults
// registered below.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// setDefaults registers the fallback values used when the config file omits
// a key. All rates are fractions of 1, so 6.5% is expressed as 0.065.
func setDefaults() {
	viper.SetDefault("assumptions.downPaymentPct", 0.20)
	viper.SetDefault("assumptions.termYears", constants.DefaultTermYears)
	viper.SetDefault("assumptions.propertyTaxRate", 0.0091)
	viper.SetDefault("assumptions.homeownersInsurance", 3120.0)
	viper.SetDefault("assumptions.floodInsurance", 400.0)
	viper.SetDefault("assumptions.pmiRate", 0.005)
	viper.SetDefault("assumptions.pmiCutoff", constants.DefaultPMICutoff)
	viper.SetDefault("grid.prices.min", 250000.0)
	viper.SetDefault("grid.prices.max", 305000.0)
	viper.SetDefault("grid.prices.step", 5000.0)
	viper.SetDefault("grid.rates.min", 0.04)
	viper.SetDefault("grid.rates.max", 0.065)
	viper.SetDefault("grid.rates.step", 0.0025)
	viper.SetDefault("output.format", constants.OutputFormatPretty)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors surface when calculations run.
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.ValidateAssumptions(c.Assumptions)
	warnings = append(warnings, validation.ValidateGridRanges(c.Grid.Prices, c.Grid.Rates)...)
	return warnings
}

package main

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/internal/config"
	"github.com/iwvelando/mortgage-affordability/internal/server"
	"github.com/iwvelando/mortgage-affordability/pkg/constants"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `serve starts an HTTP server exposing the payment and grid calculators as a
JSON API. The configuration file named by --config supplies the default
assumptions and ranges applied to requests that omit them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, logger, err := loadConfigAndLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		serverConfigLocation, _ := cmd.Flags().GetString("server-config")
		serverCfg, err := server.LoadConfig(serverConfigLocation)
		if err != nil {
			return fmt.Errorf("failed to load server configuration at %s: %w", serverConfigLocation, err)
		}

		// The server config may carry its own logging section, for example to
		// log to a file while the CLI logs to the console.
		if serverCfg.Logging != (config.LoggingConfig{}) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logger, err = initializeLogger(serverCfg.Logging, logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()
		}

		return server.Run(logger, conf, serverCfg, version)
	},
}

func init() {
	serveCmd.Flags().String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
}

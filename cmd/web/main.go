package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/de-tools/odoo-reporter/pkg/server"
	"github.com/de-tools/odoo-reporter/pkg/services/config"
	"github.com/de-tools/odoo-reporter/pkg/services/report"
	"github.com/de-tools/odoo-reporter/pkg/store/odoo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the Odoo reporter",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Fail-fast sanity check; each request still loads fresh credentials.
	if _, err := config.LoadOdoo(); err != nil {
		logger.Warn().Err(err).Msg("odoo configuration incomplete; requests will fail until it is fixed")
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msg("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Reports: newReportService(logger),
		},
	})

	return api.Start()
}

func newReportService(logger zerolog.Logger) func(ctx context.Context) (report.Service, error) {
	return func(ctx context.Context) (report.Service, error) {
		cfg, err := config.LoadOdoo()
		if err != nil {
			return nil, err
		}
		client := odoo.NewClient(logger, *cfg)
		return report.NewGenerator(logger, client), nil
	}
}

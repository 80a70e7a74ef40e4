package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/odoo-reporter/pkg/runtime/terminal"
	"github.com/de-tools/odoo-reporter/pkg/services/config"
	"github.com/de-tools/odoo-reporter/pkg/services/report"
	"github.com/de-tools/odoo-reporter/pkg/store/odoo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	// Logs go to stderr; stdout carries only the JSON result.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cli := terminal.NewCLI(terminal.Options{
		NewService: func(ctx context.Context) (report.Service, error) {
			cfg, err := config.LoadOdoo()
			if err != nil {
				return nil, err
			}
			client := odoo.NewClient(logger, *cfg)
			return report.NewGenerator(logger, client), nil
		},
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

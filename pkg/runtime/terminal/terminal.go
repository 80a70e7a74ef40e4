package terminal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/odoo-reporter/pkg/adapters"
	"github.com/de-tools/odoo-reporter/pkg/export/excel"
	"github.com/de-tools/odoo-reporter/pkg/models/api"
	"github.com/de-tools/odoo-reporter/pkg/services/report"
	"github.com/spf13/cobra"
)

const errNoData = "No data available to generate Excel report."

// ServiceFactory constructs the report service once per run.
type ServiceFactory func(ctx context.Context) (report.Service, error)

// CLI represents the command-line interface. All output, errors included,
// is printed as JSON to the configured writer; the process exits zero even
// on report failures so that callers can rely on parsing stdout.
type CLI struct {
	newService ServiceFactory
	output     io.Writer
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	NewService ServiceFactory
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		newService: opts.NewService,
		output:     opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:          "odoo-reporter",
		Short:        "Generate subscription reports from Odoo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.run(cmd.Context(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format for the report (json|excel)")

	return cmd
}

func (cli *CLI) run(ctx context.Context, format string) error {
	if format != "json" && format != "excel" {
		return cli.print(api.Error{Error: fmt.Sprintf("invalid format %q: choose from json, excel", format)})
	}

	svc, err := cli.newService(ctx)
	if err != nil {
		return cli.print(api.Error{Error: err.Error()})
	}

	reports, err := svc.GenerateReports(ctx)
	if err != nil {
		return cli.print(api.Error{Error: err.Error()})
	}

	if format != "excel" {
		return cli.print(adapters.MapReportsDomainToApi(reports))
	}

	if len(reports) == 0 {
		return cli.print(api.Error{Error: errNoData})
	}

	content, err := excel.RenderBase64(reports)
	if err != nil {
		return cli.print(api.Error{Error: err.Error()})
	}
	return cli.print(api.ExcelFile{FileContent: content})
}

func (cli *CLI) print(body any) error {
	return json.NewEncoder(cli.output).Encode(body)
}

package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/de-tools/odoo-reporter/pkg/models/api"
	"github.com/de-tools/odoo-reporter/pkg/models/domain"
	"github.com/de-tools/odoo-reporter/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GenerateReports(ctx context.Context) ([]domain.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Report), args.Error(1)
}

func runCLI(t *testing.T, factory ServiceFactory, args ...string) []byte {
	t.Helper()

	var out bytes.Buffer
	cli := NewCLI(Options{NewService: factory, Output: &out})
	cli.rootCmd.SetArgs(args)

	require.NoError(t, cli.Execute())
	return out.Bytes()
}

func TestCLI_JSONFormat(t *testing.T) {
	svc := new(mockService)
	svc.On("GenerateReports", mock.Anything).Return([]domain.Report{
		{Name: "SO001", Status: "Active", Products: []domain.ProductLine{}},
	}, nil)

	out := runCLI(t, func(context.Context) (report.Service, error) { return svc, nil })

	var reports []api.Report
	require.NoError(t, json.Unmarshal(out, &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "SO001", reports[0].Name)
}

func TestCLI_JSONFormatIsDefault(t *testing.T) {
	svc := new(mockService)
	svc.On("GenerateReports", mock.Anything).Return([]domain.Report{}, nil)

	out := runCLI(t, func(context.Context) (report.Service, error) { return svc, nil })

	assert.JSONEq(t, `[]`, string(out))
}

func TestCLI_ExcelFormat(t *testing.T) {
	svc := new(mockService)
	svc.On("GenerateReports", mock.Anything).Return([]domain.Report{{Name: "SO001"}}, nil)

	out := runCLI(t, func(context.Context) (report.Service, error) { return svc, nil }, "--format", "excel")

	var file api.ExcelFile
	require.NoError(t, json.Unmarshal(out, &file))
	assert.NotEmpty(t, file.FileContent)
}

func TestCLI_ExcelFormatNoData(t *testing.T) {
	svc := new(mockService)
	svc.On("GenerateReports", mock.Anything).Return([]domain.Report{}, nil)

	out := runCLI(t, func(context.Context) (report.Service, error) { return svc, nil }, "--format", "excel")

	var apiErr api.Error
	require.NoError(t, json.Unmarshal(out, &apiErr))
	assert.Equal(t, "No data available to generate Excel report.", apiErr.Error)
}

func TestCLI_InvalidFormatRejected(t *testing.T) {
	svc := new(mockService)

	out := runCLI(t, func(context.Context) (report.Service, error) { return svc, nil }, "--format", "csv")

	var apiErr api.Error
	require.NoError(t, json.Unmarshal(out, &apiErr))
	assert.Contains(t, apiErr.Error, `invalid format "csv"`)
	svc.AssertNotCalled(t, "GenerateReports", mock.Anything)
}

func TestCLI_ConfigurationErrorPrintsJSONAndExitsZero(t *testing.T) {
	factory := func(context.Context) (report.Service, error) {
		return nil, fmt.Errorf("missing Odoo configuration")
	}

	// Execute returning nil is the zero-exit contract; the error goes to
	// stdout as JSON instead.
	out := runCLI(t, factory)

	var apiErr api.Error
	require.NoError(t, json.Unmarshal(out, &apiErr))
	assert.Contains(t, apiErr.Error, "missing Odoo configuration")
}

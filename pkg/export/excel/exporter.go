package excel

import (
	"encoding/base64"
	"fmt"

	"github.com/de-tools/odoo-reporter/pkg/models/domain"
	"github.com/de-tools/odoo-reporter/pkg/services/report"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Subscription Report"

// Headers is the fixed column order of the workbook.
var Headers = []string{
	"Name", "Status", "Plan", "Start Date", "End Date",
	"Customer Name", "Customer Address", "Customer Phone",
	"Delivery Name", "Delivery Status", "Delivery Date",
	"Product", "Quantity", "Unit Price", "Subtotal",
	"Payment Terms", "Untaxed Amount", "Total Amount",
}

// Render flattens the reports into an in-memory XLSX workbook. A report
// emits one row per product line, repeating the report-level columns; a
// report with no product lines emits a single row with product sentinels.
func Render(reports []domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &Headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	rowIdx := 2
	for _, rep := range reports {
		for _, row := range reportRows(rep) {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx)
			if err != nil {
				return nil, fmt.Errorf("failed to address row %d: %w", rowIdx, err)
			}
			if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowIdx, err)
			}
			rowIdx++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBase64 renders the workbook and encodes it for JSON transport.
func RenderBase64(reports []domain.Report) (string, error) {
	content, err := Render(reports)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(content), nil
}

func reportRows(rep domain.Report) [][]any {
	products := rep.Products
	if len(products) == 0 {
		products = []domain.ProductLine{{Name: report.NotApplicable}}
	}

	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			rep.Name, rep.Status, rep.Plan, rep.StartDate, rep.EndDate,
			rep.Customer.Name, rep.Customer.Address, rep.Customer.Phone,
			rep.Delivery.Name, rep.Delivery.Status, rep.Delivery.Date,
			p.Name, p.Quantity, p.UnitPrice, p.Subtotal,
			rep.PaymentTerms, rep.UntaxedAmount, rep.TotalAmount,
		})
	}
	return rows
}

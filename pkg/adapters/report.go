package adapters

import (
	"github.com/de-tools/odoo-reporter/pkg/models/api"
	"github.com/de-tools/odoo-reporter/pkg/models/domain"
)

func MapReportDomainToApi(report domain.Report) api.Report {
	apiReport := api.Report{
		Name:          report.Name,
		Status:        report.Status,
		Plan:          report.Plan,
		StartDate:     report.StartDate,
		EndDate:       report.EndDate,
		Customer:      MapCustomerDomainToApi(report.Customer),
		Delivery:      MapDeliveryDomainToApi(report.Delivery),
		Products:      []api.ProductLine{},
		PaymentTerms:  report.PaymentTerms,
		UntaxedAmount: report.UntaxedAmount,
		TotalAmount:   report.TotalAmount,
	}

	for _, p := range report.Products {
		apiReport.Products = append(apiReport.Products, MapProductLineDomainToApi(p))
	}

	return apiReport
}

func MapReportsDomainToApi(reports []domain.Report) []api.Report {
	response := make([]api.Report, 0, len(reports))
	for _, r := range reports {
		response = append(response, MapReportDomainToApi(r))
	}
	return response
}

func MapCustomerDomainToApi(c domain.Customer) api.Customer {
	return api.Customer{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

func MapDeliveryDomainToApi(d domain.Delivery) api.Delivery {
	return api.Delivery{
		Name:   d.Name,
		Status: d.Status,
		Date:   d.Date,
	}
}

func MapProductLineDomainToApi(p domain.ProductLine) api.ProductLine {
	return api.ProductLine{
		Name:      p.Name,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Subtotal:  p.Subtotal,
	}
}

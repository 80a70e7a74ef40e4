package report

import (
	"context"
	"fmt"

	"github.com/de-tools/odoo-reporter/pkg/models/domain"
	"github.com/de-tools/odoo-reporter/pkg/models/store"
	"github.com/de-tools/odoo-reporter/pkg/store/odoo"
	"github.com/rs/zerolog"
)

// statePlaceholder is substituted for subscription_state when the backend
// lacks the sale_subscription module and omits the field entirely.
const statePlaceholder = "n/a"

var (
	orderFields = []string{
		"id", "name", "subscription_state", "plan_id", "date_order",
		"partner_id", "order_line", "payment_term_id",
		"amount_untaxed", "amount_total",
	}
	partnerFields  = []string{"name", "street", "street2", "city", "state_id", "country_id", "phone", "email"}
	lineFields     = []string{"product_id", "name", "product_uom_qty", "price_unit", "price_subtotal"}
	deliveryFields = []string{"name", "state", "scheduled_date"}
)

// Backend is the slice of the Odoo client the generator needs. The concrete
// client degrades every transport failure to an empty result, so errors here
// surface only from broken implementations; the generator isolates them per
// record either way.
type Backend interface {
	SearchRead(ctx context.Context, model string, filter []any, opts odoo.QueryOptions) ([]store.Record, error)
	Read(ctx context.Context, model string, ids []int64, fields []string) ([]store.Record, error)
}

// Service produces normalized subscription reports.
type Service interface {
	GenerateReports(ctx context.Context) ([]domain.Report, error)
}

type Generator struct {
	backend Backend
	logger  zerolog.Logger
}

func NewGenerator(logger zerolog.Logger, backend Backend) *Generator {
	return &Generator{backend: backend, logger: logger}
}

// GenerateReports fetches all sale orders and assembles one Report per
// order. A failure while assembling one order skips that order only; an
// empty or failed primary fetch yields an empty batch.
func (g *Generator) GenerateReports(ctx context.Context) ([]domain.Report, error) {
	orders, err := g.fetchOrders(ctx)
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to fetch sale orders")
		return []domain.Report{}, nil
	}
	if len(orders) == 0 {
		return []domain.Report{}, nil
	}

	reports := make([]domain.Report, 0, len(orders))
	for _, order := range orders {
		rep, err := g.buildReport(ctx, order)
		if err != nil {
			g.logger.Error().
				Err(err).
				Str("order", order.Str("name", NotApplicable)).
				Msg("skipping order")
			continue
		}
		reports = append(reports, rep)
	}

	g.logger.Info().Int("count", len(reports)).Msg("processed sale orders")
	return reports, nil
}

// fetchOrders runs the primary fetch. The domain filter is intentionally
// empty: filtering on subscription_state requires the sale_subscription
// module, which may not be installed. When the field is missing from the
// results a placeholder state is injected so assembly never depends on it.
func (g *Generator) fetchOrders(ctx context.Context) ([]store.Record, error) {
	orders, err := g.backend.SearchRead(ctx, "sale.order", []any{}, odoo.QueryOptions{Fields: orderFields})
	if err != nil {
		return nil, err
	}

	if len(orders) > 0 && !orders[0].Has("subscription_state") {
		g.logger.Warn().Msg("subscription_state missing; sale_subscription module is likely not installed")
		for _, order := range orders {
			order["subscription_state"] = statePlaceholder
		}
	}
	return orders, nil
}

func (g *Generator) buildReport(ctx context.Context, order store.Record) (domain.Report, error) {
	customer, err := g.fetchCustomer(ctx, order.Relation("partner_id").ID)
	if err != nil {
		return domain.Report{}, fmt.Errorf("customer: %w", err)
	}

	delivery, err := g.fetchDelivery(ctx, order.Str("name", ""))
	if err != nil {
		return domain.Report{}, fmt.Errorf("delivery: %w", err)
	}

	products, err := g.fetchProducts(ctx, order.IDs("order_line"))
	if err != nil {
		return domain.Report{}, fmt.Errorf("order lines: %w", err)
	}

	return domain.Report{
		Name:      order.Str("name", NotApplicable),
		Status:    SubscriptionStatusLabel(order.Str("subscription_state", "")),
		Plan:      order.Relation("plan_id").LabelOr(NotAvailable),
		StartDate: FormatDate(order.Str("date_order", "")),
		// Sale orders have no end-date concept; always the sentinel.
		EndDate: NotAvailable,
		Customer: domain.Customer{
			Name:    customer.Str("name", NotApplicable),
			Address: FormatAddress(customer),
			Phone:   customer.Str("phone", NotApplicable),
		},
		Delivery:      delivery,
		Products:      products,
		PaymentTerms:  order.Relation("payment_term_id").LabelOr(NotApplicable),
		UntaxedAmount: order.Float("amount_untaxed"),
		TotalAmount:   order.Float("amount_total"),
	}, nil
}

func (g *Generator) fetchCustomer(ctx context.Context, partnerID int64) (store.Record, error) {
	if partnerID == 0 {
		return store.Record{}, nil
	}

	partners, err := g.backend.Read(ctx, "res.partner", []int64{partnerID}, partnerFields)
	if err != nil {
		return nil, err
	}
	if len(partners) == 0 {
		return store.Record{}, nil
	}
	return partners[0], nil
}

// fetchDelivery finds the most recently scheduled outbound shipment whose
// origin matches the order reference.
func (g *Generator) fetchDelivery(ctx context.Context, origin string) (domain.Delivery, error) {
	none := domain.Delivery{Name: NotApplicable, Status: NotApplicable, Date: NotAvailable}
	if origin == "" {
		return none, nil
	}

	filter := []any{
		[]any{"origin", "=", origin},
		[]any{"picking_type_id.code", "=", "outgoing"},
	}
	pickings, err := g.backend.SearchRead(ctx, "stock.picking", filter, odoo.QueryOptions{
		Fields: deliveryFields,
		Order:  "scheduled_date desc",
		Limit:  1,
	})
	if err != nil {
		return domain.Delivery{}, err
	}
	if len(pickings) == 0 {
		return none, nil
	}

	picking := pickings[0]
	status := NotApplicable
	if code := picking.Str("state", ""); code != "" {
		status = DeliveryStatusLabel(code)
	}

	return domain.Delivery{
		Name:   picking.Str("name", NotApplicable),
		Status: status,
		Date:   FormatDate(picking.Str("scheduled_date", "")),
	}, nil
}

func (g *Generator) fetchProducts(ctx context.Context, lineIDs []int64) ([]domain.ProductLine, error) {
	if len(lineIDs) == 0 {
		return nil, nil
	}

	lines, err := g.backend.Read(ctx, "sale.order.line", lineIDs, lineFields)
	if err != nil {
		return nil, err
	}

	products := make([]domain.ProductLine, 0, len(lines))
	for _, line := range lines {
		products = append(products, domain.ProductLine{
			Name:      firstLine(line.Str("name", NotApplicable)),
			Quantity:  line.Float("product_uom_qty"),
			UnitPrice: line.Float("price_unit"),
			Subtotal:  line.Float("price_subtotal"),
		})
	}
	return products, nil
}

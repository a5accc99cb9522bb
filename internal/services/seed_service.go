// Package services contains the order generation pipeline.
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderseed/internal/config"
	"orderseed/internal/generator"
	"orderseed/internal/models"
	"orderseed/internal/report"
	"orderseed/internal/shopify"
)

// Each generated order buys exactly one unit of one variant.
const lineItemQuantity = 1

// SeedService generates one order end to end: pick a customer, pick an
// in-stock variant, open a draft order, complete it into a real order, and
// report the result. It performs no I/O of its own; the platform client and
// the reporter are injected.
type SeedService struct {
	api      shopify.AdminAPI
	gen      *generator.Generator
	reporter report.Reporter
	cfg      *config.Config
}

// NewSeedService creates a SeedService.
func NewSeedService(api shopify.AdminAPI, gen *generator.Generator, reporter report.Reporter, cfg *config.Config) *SeedService {
	return &SeedService{
		api:      api,
		gen:      gen,
		reporter: reporter,
		cfg:      cfg,
	}
}

// Run executes the pipeline once. The first failing step aborts the run;
// nothing is retried or compensated, and the summary is reported only after
// the order exists on the platform.
func (s *SeedService) Run() (*models.RunSummary, error) {
	runID := uuid.New().String()
	s.reporter.Stage("run started", "run_id", runID)

	// 1. Pick a customer from the first page.
	customers, err := s.api.ListCustomers(s.cfg.CustomerPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	customer, err := s.gen.PickCustomer(customers)
	if err != nil {
		return nil, err
	}
	s.reporter.Stage("picked customer",
		"run_id", runID,
		"customer_id", customer.ID,
		"customer", customer.DisplayName(),
	)

	// 2. Pick a product variant with sellable inventory.
	products, err := s.api.ListProducts(s.cfg.ProductPageSize, s.cfg.VariantPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	product, variant, err := s.gen.PickProductVariant(products)
	if err != nil {
		return nil, err
	}
	s.reporter.Stage("picked variant",
		"run_id", runID,
		"product", product.Title,
		"variant_id", variant.ID,
		"variant", variant.Title,
		"price", variant.Price,
		"inventory", variant.InventoryQuantity,
	)

	// 3. Open the draft order: one unit, shipping address from the customer
	// record or synthesized, billing as an exact copy of shipping.
	shipping := s.gen.ShippingAddress(customer)
	billing := shipping
	draft, err := s.api.CreateDraftOrder(shopify.DraftOrderInput{
		CustomerID: customer.ID,
		Note:       fmt.Sprintf("Generated order, run %s", runID),
		Tags:       []string{"orderseed", "run:" + runID},
		LineItems: []shopify.DraftOrderLineItemInput{
			{VariantID: variant.ID, Quantity: lineItemQuantity},
		},
		ShippingAddress: &shipping,
		BillingAddress:  &billing,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create draft order: %w", err)
	}
	total := lineTotal(variant)
	s.reporter.Stage("draft order created",
		"run_id", runID,
		"draft_id", draft.ID,
		"draft_name", draft.Name,
		"line_total", total,
		"order_total", draft.TotalPrice,
	)

	// 4. Draw the remaining synthetic attributes, then complete the draft
	// into a real order. Only the payment draw reaches the platform, as the
	// paymentPending flag.
	payment := s.gen.PaymentStatus()
	fulfillment := s.gen.FulfillmentStatus()
	delivery := s.gen.Delivery(fulfillment)
	order, err := s.api.CompleteDraftOrder(draft.ID, payment.Pending())
	if err != nil {
		return nil, fmt.Errorf("failed to complete draft order: %w", err)
	}
	s.reporter.Stage("draft order completed",
		"run_id", runID,
		"order_id", order.ID,
		"order_name", order.Name,
		"payment_status", string(payment),
		"payment_pending", payment.Pending(),
	)

	// 5. Orders that never shipped skip the fulfillment step; shipped ones
	// record the simulated shipment without a platform call.
	if fulfillment == models.FulfillmentStatusUnfulfilled ||
		fulfillment == models.FulfillmentStatusRestocked ||
		!delivery.Status.Shipped() {
		s.reporter.Stage("fulfillment skipped",
			"run_id", runID,
			"requested_fulfillment", string(fulfillment),
			"delivery_status", string(delivery.Status),
		)
	} else {
		s.reporter.Stage("fulfillment simulated",
			"run_id", runID,
			"requested_fulfillment", string(fulfillment),
			"delivery_status", string(delivery.Status),
			"carrier", string(delivery.Carrier),
			"tracking_number", delivery.TrackingNumber,
		)
	}

	// 6. Assemble and report the summary. The fulfillment the platform
	// reports is kept separate from the requested one; an absent value
	// defaults to UNFULFILLED.
	platformFulfillment := order.FulfillmentStatus
	if platformFulfillment == "" {
		platformFulfillment = string(models.FulfillmentStatusUnfulfilled)
	}
	summary := &models.RunSummary{
		RunID:                runID,
		CustomerID:           customer.ID,
		CustomerName:         customer.DisplayName(),
		CustomerEmail:        customer.Email,
		ProductTitle:         product.Title,
		VariantID:            variant.ID,
		VariantTitle:         variant.Title,
		UnitPrice:            variant.Price,
		Quantity:             lineItemQuantity,
		LineTotal:            total,
		OrderTotal:           draft.TotalPrice,
		OrderID:              order.ID,
		OrderName:            order.Name,
		PaymentStatus:        payment,
		PaymentPending:       payment.Pending(),
		FinancialStatus:      order.FinancialStatus,
		RequestedFulfillment: fulfillment,
		PlatformFulfillment:  platformFulfillment,
		Delivery:             delivery,
	}
	s.reporter.Summary(summary)
	return summary, nil
}

// lineTotal computes quantity times unit price, falling back to the raw
// price string when the platform money format does not parse.
func lineTotal(variant models.ProductVariant) string {
	price, err := variant.UnitPrice()
	if err != nil {
		return variant.Price
	}
	return price.Mul(decimal.NewFromInt(lineItemQuantity)).StringFixed(2)
}

// Package report carries run progress and the final summary to whoever is
// listening. Core components emit here instead of doing their own I/O.
package report

import (
	"log/slog"

	"orderseed/internal/models"
)

// Reporter receives pipeline progress and the final run summary.
type Reporter interface {
	// Stage records one pipeline step with optional key/value context.
	Stage(stage string, kv ...any)
	// Summary delivers the completed run, after the final platform call
	// succeeded. It is called at most once per run.
	Summary(summary *models.RunSummary)
}

// consoleReporter writes structured records through a slog logger.
type consoleReporter struct {
	log *slog.Logger
}

// NewConsole creates a Reporter that logs stages and the summary through logger.
func NewConsole(logger *slog.Logger) Reporter {
	return &consoleReporter{log: logger}
}

func (r *consoleReporter) Stage(stage string, kv ...any) {
	r.log.Info(stage, kv...)
}

func (r *consoleReporter) Summary(summary *models.RunSummary) {
	r.log.Info("order generated",
		"run_id", summary.RunID,
		"order_id", summary.OrderID,
		"order_name", summary.OrderName,
		"customer", summary.CustomerName,
		"customer_email", summary.CustomerEmail,
		"product", summary.ProductTitle,
		"variant", summary.VariantTitle,
		"unit_price", summary.UnitPrice,
		"quantity", summary.Quantity,
		"line_total", summary.LineTotal,
		"order_total", summary.OrderTotal,
		"payment_status", string(summary.PaymentStatus),
		"payment_pending", summary.PaymentPending,
		"financial_status", summary.FinancialStatus,
		"requested_fulfillment", string(summary.RequestedFulfillment),
		"platform_fulfillment", summary.PlatformFulfillment,
		"delivery_status", string(summary.Delivery.Status),
		"carrier", string(summary.Delivery.Carrier),
		"tracking_number", summary.Delivery.TrackingNumber,
	)
}

// multiReporter fans out to several reporters in order.
type multiReporter struct {
	reporters []Reporter
}

// Combine returns a Reporter that delivers every event to each of rs in order.
func Combine(rs ...Reporter) Reporter {
	if len(rs) == 1 {
		return rs[0]
	}
	return &multiReporter{reporters: rs}
}

func (m *multiReporter) Stage(stage string, kv ...any) {
	for _, r := range m.reporters {
		r.Stage(stage, kv...)
	}
}

func (m *multiReporter) Summary(summary *models.RunSummary) {
	for _, r := range m.reporters {
		r.Summary(summary)
	}
}

package models

// DraftOrder is the provisional order the platform returns before completion.
type DraftOrder struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalPrice string `json:"totalPrice"`
}

// Order is the real order produced by completing a draft order. The status
// fields hold whatever the platform reported, not the synthetic values
// requested by the generator.
type Order struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	FinancialStatus   string `json:"displayFinancialStatus"`
	FulfillmentStatus string `json:"displayFulfillmentStatus"`
}

// RunSummary is the final report of one generation run: who ordered what,
// which synthetic states were drawn, and what the platform actually created.
type RunSummary struct {
	RunID                string            `json:"run_id"`
	CustomerID           string            `json:"customer_id"`
	CustomerName         string            `json:"customer_name"`
	CustomerEmail        string            `json:"customer_email"`
	ProductTitle         string            `json:"product_title"`
	VariantID            string            `json:"variant_id"`
	VariantTitle         string            `json:"variant_title"`
	UnitPrice            string            `json:"unit_price"`
	Quantity             int               `json:"quantity"`
	LineTotal            string            `json:"line_total"`
	OrderTotal           string            `json:"order_total"`
	OrderID              string            `json:"order_id"`
	OrderName            string            `json:"order_name"`
	PaymentStatus        PaymentStatus     `json:"payment_status"`
	PaymentPending       bool              `json:"payment_pending"`
	FinancialStatus      string            `json:"financial_status"`
	RequestedFulfillment FulfillmentStatus `json:"requested_fulfillment"`
	PlatformFulfillment  string            `json:"platform_fulfillment"`
	Delivery             DeliveryInfo      `json:"delivery"`
}

package models

// PaymentStatus is the synthetic payment state attached to a generated order.
type PaymentStatus string

const (
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
)

// Pending reports whether a draft order carrying this status must be
// completed with payment still owing. The platform flag is a boolean, so
// every status except PAID collapses into pending.
func (s PaymentStatus) Pending() bool {
	return s != PaymentStatusPaid
}

// FulfillmentStatus is the synthetic fulfillment state attached to a generated order.
type FulfillmentStatus string

const (
	FulfillmentStatusFulfilled          FulfillmentStatus = "FULFILLED"
	FulfillmentStatusPartiallyFulfilled FulfillmentStatus = "PARTIALLY_FULFILLED"
	FulfillmentStatusUnfulfilled        FulfillmentStatus = "UNFULFILLED"
	FulfillmentStatusPendingFulfillment FulfillmentStatus = "PENDING_FULFILLMENT"
	FulfillmentStatusRestocked          FulfillmentStatus = "RESTOCKED"
)

// DeliveryStatus is the synthetic shipment state derived from a FulfillmentStatus.
type DeliveryStatus string

const (
	DeliveryStatusNotShipped     DeliveryStatus = "NOT_SHIPPED"
	DeliveryStatusInTransit      DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	DeliveryStatusDelivered      DeliveryStatus = "DELIVERED"
	DeliveryStatusDelayed        DeliveryStatus = "DELAYED"
)

// Shipped reports whether the parcel has left the warehouse in the simulated
// timeline, i.e. whether carrier and tracking details exist at all.
func (s DeliveryStatus) Shipped() bool {
	return s != DeliveryStatusNotShipped
}

// Carrier is a shipping carrier assigned to a simulated shipment.
type Carrier string

const (
	CarrierUPS    Carrier = "UPS"
	CarrierUSPS   Carrier = "USPS"
	CarrierFedEx  Carrier = "FEDEX"
	CarrierDHL    Carrier = "DHL"
	CarrierOnTrac Carrier = "ONTRAC"
)

// DeliveryInfo bundles the synthetic delivery state for a generated order.
// Carrier and TrackingNumber are empty exactly when Status is NOT_SHIPPED.
type DeliveryInfo struct {
	Status         DeliveryStatus `json:"status"`
	Carrier        Carrier        `json:"carrier,omitempty"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
}

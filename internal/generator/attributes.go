package generator

import "orderseed/internal/models"

var (
	paymentStatuses = []models.PaymentStatus{
		models.PaymentStatusPaid,
		models.PaymentStatusPending,
		models.PaymentStatusPartiallyPaid,
		models.PaymentStatusUnpaid,
	}

	fulfillmentStatuses = []models.FulfillmentStatus{
		models.FulfillmentStatusFulfilled,
		models.FulfillmentStatusPartiallyFulfilled,
		models.FulfillmentStatusUnfulfilled,
		models.FulfillmentStatusPendingFulfillment,
		models.FulfillmentStatusRestocked,
	}

	carriers = []models.Carrier{
		models.CarrierUPS,
		models.CarrierUSPS,
		models.CarrierFedEx,
		models.CarrierDHL,
		models.CarrierOnTrac,
	}
)

// PaymentStatus draws one of the four payment states uniformly.
func (g *Generator) PaymentStatus() models.PaymentStatus {
	return paymentStatuses[g.index(len(paymentStatuses))]
}

// FulfillmentStatus draws one of the five fulfillment states uniformly.
func (g *Generator) FulfillmentStatus() models.FulfillmentStatus {
	return fulfillmentStatuses[g.index(len(fulfillmentStatuses))]
}

// DeliveryStatus derives a shipment state consistent with the fulfillment
// state. Orders that never shipped are NOT_SHIPPED with no randomness;
// shipped ones land somewhere along the carrier pipeline.
func (g *Generator) DeliveryStatus(f models.FulfillmentStatus) models.DeliveryStatus {
	switch f {
	case models.FulfillmentStatusFulfilled:
		opts := []models.DeliveryStatus{
			models.DeliveryStatusInTransit,
			models.DeliveryStatusOutForDelivery,
			models.DeliveryStatusDelivered,
		}
		return opts[g.index(len(opts))]
	case models.FulfillmentStatusPartiallyFulfilled:
		opts := []models.DeliveryStatus{
			models.DeliveryStatusInTransit,
			models.DeliveryStatusDelayed,
		}
		return opts[g.index(len(opts))]
	case models.FulfillmentStatusPendingFulfillment:
		opts := []models.DeliveryStatus{
			models.DeliveryStatusNotShipped,
			models.DeliveryStatusDelayed,
		}
		return opts[g.index(len(opts))]
	default:
		// UNFULFILLED, RESTOCKED and anything unrecognized never ship.
		return models.DeliveryStatusNotShipped
	}
}

// Carrier draws one of the supported shipping carriers uniformly.
func (g *Generator) Carrier() models.Carrier {
	return carriers[g.index(len(carriers))]
}

// TrackingNumber fabricates a tracking code in the carrier's format. Each
// digit group is drawn from a range sized to pin the digit count.
func (g *Generator) TrackingNumber(c models.Carrier) string {
	switch c {
	case models.CarrierUPS:
		return "1Z" + g.digitsBetween(10_000_000, 99_999_999)
	case models.CarrierUSPS:
		return "9400" + g.digitsBetween(1_000_000_000_000_000, 9_999_999_999_999_999)
	case models.CarrierFedEx:
		return g.digitsBetween(100_000_000_000, 999_999_999_999)
	case models.CarrierDHL:
		return g.digitsBetween(1_000_000_000, 9_999_999_999)
	case models.CarrierOnTrac:
		return "C" + g.digitsBetween(10_000_000_000_000, 99_999_999_999_999)
	default:
		return "TRK" + g.digitsBetween(1_000_000, 9_999_999)
	}
}

// Delivery draws the delivery state for f plus carrier and tracking details
// when the parcel has shipped. NOT_SHIPPED deliveries carry neither.
func (g *Generator) Delivery(f models.FulfillmentStatus) models.DeliveryInfo {
	status := g.DeliveryStatus(f)
	if !status.Shipped() {
		return models.DeliveryInfo{Status: status}
	}
	carrier := g.Carrier()
	return models.DeliveryInfo{
		Status:         status,
		Carrier:        carrier,
		TrackingNumber: g.TrackingNumber(carrier),
	}
}

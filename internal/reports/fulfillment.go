// Package reports derives cross-entity views from the session
// collections. Everything here is a pure function of its inputs: no
// mutation, total on empty input, and missing cross-references yield
// absent fields rather than errors.
package reports

import (
	"github.com/threadline-erp/threadline/internal/challans"
	"github.com/threadline-erp/threadline/internal/orders"
)

// Fulfillment is the delivery position of one job order, aggregated from
// its challans. This recomputed figure, not the order's stored
// CompletedQty cache, is authoritative.
type Fulfillment struct {
	Challans     []challans.DeliveryChallan
	CompletedQty float64
	DamageQty    float64
	PendingQty   float64
}

// ComputeFulfillment aggregates the challans whose PO number matches the
// order's document number (exact, case-sensitive). PendingQty goes
// negative when more was delivered than ordered; it is deliberately not
// clamped so over-delivery stays visible.
func ComputeFulfillment(order orders.JobOrder, all []challans.DeliveryChallan) Fulfillment {
	f := Fulfillment{}
	for _, c := range all {
		if c.PONumber != order.JobOrderNo {
			continue
		}
		f.Challans = append(f.Challans, c)
		f.CompletedQty += c.FinishedQty
		f.DamageQty += c.DamageQty
	}
	f.PendingQty = order.Quantity - f.CompletedQty
	return f
}

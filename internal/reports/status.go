package reports

import (
	"strings"

	"github.com/threadline-erp/threadline/internal/challans"
	"github.com/threadline-erp/threadline/internal/invoices"
	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/shared"
)

// Filter narrows the status report. Search matches order number, vendor
// or goods description (case-insensitive, OR across the three fields);
// Vendor and Status are exact matches with empty meaning all. The three
// conditions are combined with AND.
type Filter struct {
	Search string
	Vendor string
	Status orders.Status
}

// Matches reports whether order passes the filter.
func (f Filter) Matches(order orders.JobOrder) bool {
	if f.Vendor != "" && order.VendorName != f.Vendor {
		return false
	}
	if f.Status != "" && order.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	return shared.ContainsFold(order.JobOrderNo, f.Search) ||
		shared.ContainsFold(order.VendorName, f.Search) ||
		shared.ContainsFold(order.GoodsDescription, f.Search)
}

// StatusRow is one job order joined with its challans and its first
// matching invoice. CompletedQty and PendingQty override the order's
// stored cache with the recomputed fulfillment figures. Invoice and Tax
// are nil when no invoice is billed against the order; the challan
// aggregates are nil when no challan matches.
type StatusRow struct {
	Order        orders.JobOrder
	CompletedQty float64
	PendingQty   float64

	// Comma-joined across matching challans, empty when none.
	ChallanNos   string
	ChallanDates string

	ChallanFinishedQty *float64
	ChallanDamageQty   *float64

	Invoice *invoices.Invoice
	Tax     *invoices.Breakdown
}

// BuildStatus joins each order passing the filter with its challans and
// first invoice. Rows come out in the order collection's own iteration
// order; there is no sort.
//
// Known limitation inherited from the workflow: when several invoices
// exist against one order only the first is surfaced.
func BuildStatus(ords []orders.JobOrder, chs []challans.DeliveryChallan, invs []invoices.Invoice, filter Filter) []StatusRow {
	var rows []StatusRow
	for _, order := range ords {
		if !filter.Matches(order) {
			continue
		}

		fulfillment := ComputeFulfillment(order, chs)
		row := StatusRow{
			Order:        order,
			CompletedQty: fulfillment.CompletedQty,
			PendingQty:   fulfillment.PendingQty,
		}

		if len(fulfillment.Challans) > 0 {
			nos := make([]string, 0, len(fulfillment.Challans))
			dates := make([]string, 0, len(fulfillment.Challans))
			for _, c := range fulfillment.Challans {
				nos = append(nos, c.ChallanNo)
				dates = append(dates, c.Date.Format(shared.DateLayout))
			}
			row.ChallanNos = strings.Join(nos, ", ")
			row.ChallanDates = strings.Join(dates, ", ")
			finished := fulfillment.CompletedQty
			damaged := fulfillment.DamageQty
			row.ChallanFinishedQty = &finished
			row.ChallanDamageQty = &damaged
		}

		for i := range invs {
			if invs[i].PONumber == order.JobOrderNo {
				invoice := invs[i]
				tax := invoices.Amounts(invoice)
				row.Invoice = &invoice
				row.Tax = &tax
				break
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// UniqueVendors lists distinct vendor names in first-seen order; the
// vendor filter dropdown is populated from it.
func UniqueVendors(ords []orders.JobOrder) []string {
	seen := make(map[string]struct{}, len(ords))
	var out []string
	for _, o := range ords {
		if _, ok := seen[o.VendorName]; ok {
			continue
		}
		seen[o.VendorName] = struct{}{}
		out = append(out, o.VendorName)
	}
	return out
}

// Package analytics aggregates the session collections into the
// dashboard summary. Like reports, everything is a pure function of the
// input snapshot and total on empty input.
package analytics

import (
	"sort"

	"github.com/threadline-erp/threadline/internal/invoices"
	"github.com/threadline-erp/threadline/internal/orders"
)

// ClientRevenue is one entry of the top-clients leaderboard.
type ClientRevenue struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// QuantityPoint feeds the recent-quantities chart. Completed is the
// order's stored cache, not the challan-recomputed figure; the dashboard
// inherits this divergence from the rest of the views and it is kept so
// observable output does not change.
type QuantityPoint struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Completed float64 `json:"completed"`
}

// Summary is the dashboard aggregate bundle.
type Summary struct {
	TotalJobOrders    int                   `json:"total_job_orders"`
	TotalInvoices     int                   `json:"total_invoices"`
	StatusCounts      map[orders.Status]int `json:"status_counts"`
	TotalInvoiceValue float64               `json:"total_invoice_value"`
	TopClients        []ClientRevenue       `json:"top_clients"`
	RecentQuantities  []QuantityPoint       `json:"recent_quantities"`
}

// Service computes dashboard aggregates. Limits come from configuration.
type Service struct {
	recentLimit int
	topLimit    int
}

func NewService(recentLimit, topLimit int) *Service {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	if topLimit <= 0 {
		topLimit = 5
	}
	return &Service{recentLimit: recentLimit, topLimit: topLimit}
}

// Summarize builds the dashboard from the current collections.
func (s *Service) Summarize(ords []orders.JobOrder, invs []invoices.Invoice) Summary {
	summary := Summary{
		TotalJobOrders: len(ords),
		TotalInvoices:  len(invs),
		StatusCounts:   make(map[orders.Status]int, len(orders.Statuses())),
	}
	for _, status := range orders.Statuses() {
		summary.StatusCounts[status] = 0
	}
	for _, o := range ords {
		summary.StatusCounts[o.Status]++
	}

	for _, inv := range invs {
		summary.TotalInvoiceValue += invoices.Amounts(inv).TotalAmount
	}

	summary.TopClients = s.topClients(invs)

	limit := s.recentLimit
	if limit > len(ords) {
		limit = len(ords)
	}
	for _, o := range ords[:limit] {
		summary.RecentQuantities = append(summary.RecentQuantities, QuantityPoint{
			Name:      o.JobOrderNo,
			Quantity:  o.Quantity,
			Completed: o.CompletedQty,
		})
	}

	return summary
}

// topClients groups invoices by billed-to name and ranks by invoice
// value. The sort is stable, so clients with equal totals keep their
// first-encountered order.
func (s *Service) topClients(invs []invoices.Invoice) []ClientRevenue {
	index := make(map[string]int, len(invs))
	var totals []ClientRevenue
	for _, inv := range invs {
		name := inv.BilledTo.Name
		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, ClientRevenue{Name: name})
		}
		totals[i].Total += invoices.Amounts(inv).TotalAmount
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	if len(totals) > s.topLimit {
		totals = totals[:s.topLimit]
	}
	return totals
}

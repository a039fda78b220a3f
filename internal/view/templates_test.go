package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-erp/threadline/internal/analytics"
	"github.com/threadline-erp/threadline/internal/invoices"
	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/reports"
	"github.com/threadline-erp/threadline/internal/shared"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	formatter, err := NewFormatter("en-IN")
	require.NoError(t, err)
	engine, err := NewEngine(formatter)
	require.NoError(t, err)
	return engine
}

func TestRenderStatusReport(t *testing.T) {
	engine := newTestEngine(t)

	inv := invoices.Invoice{
		InvoiceNo: "INV-001",
		Date:      time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		BilledTo:  shared.PartyDetails{Name: "Fashion Forward Inc."},
	}
	tax := invoices.Breakdown{TaxableAmount: 160000, CGST: 14400, SGST: 14400, TotalAmount: 188800}

	data := StatusReportData{
		Title:       "Job Work Status Report",
		GeneratedAt: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		Rows: []reports.StatusRow{
			{
				Order: orders.JobOrder{
					JobOrderNo:       "JO-001",
					Date:             time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
					VendorName:       "Stitch Perfect",
					GoodsDescription: "Cotton T-Shirts",
					Quantity:         1000,
					UOM:              "Pcs",
					Status:           orders.StatusInProgress,
				},
				CompletedQty: 400,
				PendingQty:   600,
				ChallanNos:   "DC-001, DC-002",
				Invoice:      &inv,
				Tax:          &tax,
			},
			{
				Order: orders.JobOrder{JobOrderNo: "JO-003", Status: orders.StatusPending, Quantity: 500},
				PendingQty: 500,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "status_report.html", data))
	html := buf.String()

	assert.Contains(t, html, "Job Work Status Report")
	assert.Contains(t, html, "Generated 15 Aug 2024")
	assert.Contains(t, html, "JO-001")
	assert.Contains(t, html, "DC-001, DC-002")
	assert.Contains(t, html, "INV-001")
	assert.Contains(t, html, "Fashion Forward Inc.")
	assert.Contains(t, html, "₹1,88,800.00")
	// The row without a challan or invoice falls back to N/A cells.
	assert.Contains(t, html, "JO-003")
	assert.Contains(t, html, "N/A")
}

func TestRenderDashboard(t *testing.T) {
	engine := newTestEngine(t)

	data := DashboardData{
		Title:       "Dashboard Summary",
		GeneratedAt: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		Summary: analytics.Summary{
			TotalJobOrders: 3,
			TotalInvoices:  2,
			StatusCounts: map[orders.Status]int{
				orders.StatusPending:    1,
				orders.StatusInProgress: 1,
				orders.StatusCompleted:  1,
			},
			TotalInvoiceValue: 188800,
			TopClients: []analytics.ClientRevenue{
				{Name: "Fashion Forward Inc.", Total: 118000},
				{Name: "Trendy Threads", Total: 70800},
			},
			RecentQuantities: []analytics.QuantityPoint{
				{Name: "JO-001", Quantity: 1000, Completed: 400},
			},
		},
		Statuses: orders.Statuses(),
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "dashboard.html", data))
	html := buf.String()

	assert.Contains(t, html, "Dashboard Summary")
	assert.Contains(t, html, "In Progress")
	assert.Contains(t, html, "₹1,88,800.00")
	assert.Contains(t, html, "Fashion Forward Inc.")
	assert.Contains(t, html, "JO-001")
}

func TestRenderDashboardWithoutInvoices(t *testing.T) {
	engine := newTestEngine(t)

	data := DashboardData{
		Title:    "Dashboard Summary",
		Summary:  analytics.Summary{StatusCounts: map[orders.Status]int{}},
		Statuses: orders.Statuses(),
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, "dashboard.html", data))

	assert.Contains(t, buf.String(), "No invoice data available")
}

func TestRenderUnknownTemplate(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	err := engine.Render(&buf, "missing.html", nil)
	assert.Error(t, err)
}

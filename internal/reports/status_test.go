package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-erp/threadline/internal/challans"
	"github.com/threadline-erp/threadline/internal/invoices"
	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/shared"
)

func sampleOrders() []orders.JobOrder {
	return []orders.JobOrder{
		{
			ID: "a", JobOrderNo: "JO-001", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			VendorName: "ABC Textiles", GoodsDescription: "Cotton T-Shirts", Color: "White",
			Quantity: 500, UOM: "Pieces", CompletedQty: 300, DamageQty: 5,
			Status: orders.StatusInProgress,
		},
		{
			ID: "b", JobOrderNo: "JO-002", Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			VendorName: "XYZ Garments", GoodsDescription: "Denim Jeans", Color: "Blue",
			Quantity: 200, UOM: "Pieces", CompletedQty: 200, DamageQty: 2,
			Status: orders.StatusCompleted,
		},
		{
			ID: "c", JobOrderNo: "JO-003", Date: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			VendorName: "Sewing Masters Co.", GoodsDescription: "Polo Shirts", Color: "Black",
			Quantity: 300, UOM: "Pieces", Status: orders.StatusPending,
		},
	}
}

func sampleChallans() []challans.DeliveryChallan {
	return []challans.DeliveryChallan{
		{
			ChallanNo: "DC-001", Date: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			PONumber: "JO-001", FinishedQty: 300, RatePerPiece: 250,
		},
		{
			ChallanNo: "DC-002", Date: time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
			PONumber: "JO-001", FinishedQty: 100, DamageQty: 4, RatePerPiece: 250,
		},
	}
}

func sampleInvoices() []invoices.Invoice {
	return []invoices.Invoice{
		{
			InvoiceNo: "INV-001", Date: time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
			PONumber: "JO-001", BilledTo: shared.PartyDetails{Name: "Fashion Forward Inc."},
			ChallanQty: 300, RatePerPiece: 250,
		},
	}
}

func TestBuildStatusJoinsAllThreeEntities(t *testing.T) {
	rows := BuildStatus(sampleOrders(), sampleChallans(), sampleInvoices(), Filter{})
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "JO-001", first.Order.JobOrderNo)
	assert.InDelta(t, 400, first.CompletedQty, 1e-9, "completed comes from challans, not the stored cache")
	assert.InDelta(t, 100, first.PendingQty, 1e-9)
	assert.Equal(t, "DC-001, DC-002", first.ChallanNos)
	assert.Equal(t, "2024-07-10, 2024-07-12", first.ChallanDates)
	require.NotNil(t, first.ChallanDamageQty)
	assert.InDelta(t, 4, *first.ChallanDamageQty, 1e-9)

	require.NotNil(t, first.Invoice)
	assert.Equal(t, "INV-001", first.Invoice.InvoiceNo)
	require.NotNil(t, first.Tax)
	assert.InDelta(t, 75000, first.Tax.TaxableAmount, 1e-6)
	assert.InDelta(t, 88500, first.Tax.TotalAmount, 1e-6)
}

func TestBuildStatusAbsentCrossReferences(t *testing.T) {
	rows := BuildStatus(sampleOrders(), sampleChallans(), sampleInvoices(), Filter{})
	require.Len(t, rows, 3)

	// JO-003 has neither challans nor an invoice.
	third := rows[2]
	assert.Empty(t, third.ChallanNos)
	assert.Nil(t, third.ChallanFinishedQty)
	assert.Nil(t, third.ChallanDamageQty)
	assert.Nil(t, third.Invoice)
	assert.Nil(t, third.Tax)
	assert.InDelta(t, 300, third.PendingQty, 1e-9)
}

func TestBuildStatusIsPureAndIdempotent(t *testing.T) {
	ords, chs, invs := sampleOrders(), sampleChallans(), sampleInvoices()

	first := BuildStatus(ords, chs, invs, Filter{Search: "jo"})
	second := BuildStatus(ords, chs, invs, Filter{Search: "jo"})

	assert.Equal(t, first, second)
	assert.Equal(t, sampleOrders(), ords, "inputs are not mutated")
}

func TestBuildStatusFirstInvoiceOnly(t *testing.T) {
	invs := append(sampleInvoices(), invoices.Invoice{
		InvoiceNo: "INV-002", PONumber: "JO-001", ChallanQty: 100, RatePerPiece: 250,
	})

	rows := BuildStatus(sampleOrders(), nil, invs, Filter{})
	require.NotEmpty(t, rows)

	// Known limitation: only the first matching invoice is surfaced.
	require.NotNil(t, rows[0].Invoice)
	assert.Equal(t, "INV-001", rows[0].Invoice.InvoiceNo)
}

func TestBuildStatusFilters(t *testing.T) {
	ords, chs, invs := sampleOrders(), sampleChallans(), sampleInvoices()

	bySearch := BuildStatus(ords, chs, invs, Filter{Search: "denim"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "JO-002", bySearch[0].Order.JobOrderNo)

	// Search also covers the vendor name on the status report.
	byVendorText := BuildStatus(ords, chs, invs, Filter{Search: "sewing"})
	require.Len(t, byVendorText, 1)
	assert.Equal(t, "JO-003", byVendorText[0].Order.JobOrderNo)

	byStatus := BuildStatus(ords, chs, invs, Filter{Status: orders.StatusCompleted})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "JO-002", byStatus[0].Order.JobOrderNo)

	combined := BuildStatus(ords, chs, invs, Filter{Search: "denim", Vendor: "ABC Textiles"})
	assert.Empty(t, combined, "filters are AND-combined")
}

func TestBuildStatusPreservesInputOrder(t *testing.T) {
	rows := BuildStatus(sampleOrders(), nil, nil, Filter{})
	require.Len(t, rows, 3)
	assert.Equal(t, "JO-001", rows[0].Order.JobOrderNo)
	assert.Equal(t, "JO-002", rows[1].Order.JobOrderNo)
	assert.Equal(t, "JO-003", rows[2].Order.JobOrderNo)
}

func TestBuildStatusEmptyInputs(t *testing.T) {
	assert.Empty(t, BuildStatus(nil, nil, nil, Filter{}))
}

func TestUniqueVendors(t *testing.T) {
	ords := append(sampleOrders(), orders.JobOrder{JobOrderNo: "JO-004", VendorName: "ABC Textiles"})

	got := UniqueVendors(ords)

	assert.Equal(t, []string{"ABC Textiles", "XYZ Garments", "Sewing Masters Co."}, got)
}

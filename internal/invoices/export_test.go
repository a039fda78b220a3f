package invoices

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-erp/threadline/internal/shared"
)

func TestWriteCSV(t *testing.T) {
	inv := Invoice{
		InvoiceNo:        "INV-001",
		Date:             time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
		PONumber:         "JO-001",
		BilledTo:         shared.PartyDetails{Name: "Fashion Forward Inc."},
		GoodsDescription: "Cotton T-Shirts",
		HSNCode:          "6109",
		ChallanQty:       300,
		UOM:              "Pieces",
		RatePerPiece:     250,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Invoice{inv}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Invoice No,Date,PO Number,Billed To,Goods Description,HSN Code,Challan Qty,Rate,Taxable Amount,CGST,SGST,Total Amount,Remark", lines[0])
	assert.Contains(t, lines[1], "INV-001,2024-07-11,JO-001,Fashion Forward Inc.")
	assert.Contains(t, lines[1], "75000")
}

func TestWriteCSVEscapesQuotes(t *testing.T) {
	inv := Invoice{
		InvoiceNo:        "INV-001",
		Date:             time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
		GoodsDescription: `Cotton "Premium" T-Shirts`,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Invoice{inv}))

	assert.Contains(t, buf.String(), `"Cotton ""Premium"" T-Shirts"`)
}

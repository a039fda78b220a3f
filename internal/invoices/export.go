package invoices

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/threadline-erp/threadline/internal/shared"
)

// WriteCSV serialises invoices to the invoice-register CSV layout,
// including the derived tax columns.
func WriteCSV(w io.Writer, list []Invoice) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"Invoice No", "Date", "PO Number", "Billed To",
		"Goods Description", "HSN Code", "Challan Qty", "Rate",
		"Taxable Amount", "CGST", "SGST", "Total Amount", "Remark",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, inv := range list {
		amounts := Amounts(inv)
		record := []string{
			inv.InvoiceNo,
			inv.Date.Format(shared.DateLayout),
			inv.PONumber,
			inv.BilledTo.Name,
			inv.GoodsDescription,
			inv.HSNCode,
			formatAmount(inv.ChallanQty),
			formatAmount(inv.RatePerPiece),
			formatAmount(amounts.TaxableAmount),
			formatAmount(amounts.CGST),
			formatAmount(amounts.SGST),
			formatAmount(amounts.TotalAmount),
			inv.Remark,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

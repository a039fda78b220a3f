package reports

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/threadline-erp/threadline/internal/challans"
	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/shared"
)

// WriteStatusCSV serialises status rows to the comprehensive report CSV
// layout. Absent invoice or challan fields render as empty cells.
func WriteStatusCSV(w io.Writer, rows []StatusRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"Date", "Job Order No", "Vendor", "Goods Description", "Color",
		"Unit", "Total Quantity", "Completed Qty", "Damage Qty (Job)",
		"Pending Qty", "Status", "Challan No", "Challan Date",
		"Finished Qty (Challan)", "Damage Qty (Challan)", "Invoice Date",
		"Invoice No", "Challan Qty (Inv)", "Rate/Piece", "Billed To",
		"Taxable Amount", "CGST", "SGST", "Total Amount",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Order.Date.Format(shared.DateLayout),
			row.Order.JobOrderNo,
			row.Order.VendorName,
			row.Order.GoodsDescription,
			row.Order.Color,
			row.Order.UOM,
			formatFloat(row.Order.Quantity),
			formatFloat(row.CompletedQty),
			formatFloat(row.Order.DamageQty),
			formatFloat(row.PendingQty),
			string(row.Order.Status),
			row.ChallanNos,
			row.ChallanDates,
			formatOptional(row.ChallanFinishedQty),
			formatOptional(row.ChallanDamageQty),
		}
		if row.Invoice != nil {
			record = append(record,
				row.Invoice.Date.Format(shared.DateLayout),
				row.Invoice.InvoiceNo,
				formatFloat(row.Invoice.ChallanQty),
				formatFloat(row.Invoice.RatePerPiece),
				row.Invoice.BilledTo.Name,
				formatFloat(row.Tax.TaxableAmount),
				formatFloat(row.Tax.CGST),
				formatFloat(row.Tax.SGST),
				formatFloat(row.Tax.TotalAmount),
			)
		} else {
			record = append(record, "", "", "", "", "", "", "", "", "")
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJobOrdersCSV serialises the job-order register with the
// recomputed completed and pending quantities.
func WriteJobOrdersCSV(w io.Writer, ords []orders.JobOrder, chs []challans.DeliveryChallan) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"Job Order No", "Date", "Vendor", "Description", "Color",
		"Total Qty", "UOM", "Completed Qty", "Damage Qty", "Pending Qty",
		"Status", "Remark",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, order := range ords {
		fulfillment := ComputeFulfillment(order, chs)
		record := []string{
			order.JobOrderNo,
			order.Date.Format(shared.DateLayout),
			order.VendorName,
			order.GoodsDescription,
			order.Color,
			formatFloat(order.Quantity),
			order.UOM,
			formatFloat(fulfillment.CompletedQty),
			formatFloat(order.DamageQty),
			formatFloat(fulfillment.PendingQty),
			string(order.Status),
			order.Remark,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

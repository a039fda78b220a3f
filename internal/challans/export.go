package challans

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/threadline-erp/threadline/internal/shared"
)

// WriteCSV serialises challans to the challan-register CSV layout.
func WriteCSV(w io.Writer, list []DeliveryChallan) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"Challan No", "Date", "PO Number", "PO Date",
		"Billed To", "Billed To Address", "Shipped To", "Shipped To Address",
		"Goods Description", "HSN Code", "Finished Qty", "UOM",
		"Damage Qty", "Rate Per Piece", "Amount", "Remark",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, c := range list {
		record := []string{
			c.ChallanNo,
			c.Date.Format(shared.DateLayout),
			c.PONumber,
			c.PODate.Format(shared.DateLayout),
			c.BilledTo.Name,
			c.BilledTo.Address,
			c.ShippedTo.Name,
			c.ShippedTo.Address,
			c.GoodsDescription,
			c.HSNCode,
			formatQty(c.FinishedQty),
			c.UOM,
			formatQty(c.DamageQty),
			formatQty(c.RatePerPiece),
			formatQty(c.Amount()),
			c.Remark,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

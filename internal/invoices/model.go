package invoices

import (
	"time"

	"github.com/threadline-erp/threadline/internal/shared"
)

// Invoice bills delivered goods against a job order. PONumber carries the
// job order's document number; as with challans, no existence check is
// made at creation.
type Invoice struct {
	ID               string              `json:"id"`
	InvoiceNo        string              `json:"invoice_no"`
	Date             time.Time           `json:"date"`
	PONumber         string              `json:"po_number"`
	PODate           time.Time           `json:"po_date"`
	BilledTo         shared.PartyDetails `json:"billed_to"`
	ShippedTo        shared.PartyDetails `json:"shipped_to"`
	GoodsDescription string              `json:"goods_description"`
	HSNCode          string              `json:"hsn_code"`
	ChallanQty       float64             `json:"challan_qty"`
	UOM              string              `json:"uom"`
	RatePerPiece     float64             `json:"rate_per_piece"`
	Remark           string              `json:"remark"`
}

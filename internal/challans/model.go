package challans

import (
	"time"

	"github.com/threadline-erp/threadline/internal/shared"
)

// DeliveryChallan records goods delivered against a job order, ahead of
// invoicing. PONumber carries the job order's document number; nothing
// enforces that such an order exists. An orphaned challan is accepted
// and simply never joins.
type DeliveryChallan struct {
	ID               string              `json:"id"`
	ChallanNo        string              `json:"challan_no"`
	Date             time.Time           `json:"date"`
	PONumber         string              `json:"po_number"`
	PODate           time.Time           `json:"po_date"`
	BilledTo         shared.PartyDetails `json:"billed_to"`
	ShippedTo        shared.PartyDetails `json:"shipped_to"`
	GoodsDescription string              `json:"goods_description"`
	HSNCode          string              `json:"hsn_code"`
	FinishedQty      float64             `json:"finished_qty"`
	UOM              string              `json:"uom"`
	DamageQty        float64             `json:"damage_qty"`
	RatePerPiece     float64             `json:"rate_per_piece"`
	Remark           string              `json:"remark"`
}

// Amount is the challan value before tax; tax is applied at invoicing.
func (c DeliveryChallan) Amount() float64 {
	return c.FinishedQty * c.RatePerPiece
}

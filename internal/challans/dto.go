package challans

import (
	"time"

	"github.com/threadline-erp/threadline/internal/shared"
)

type CreateChallanRequest struct {
	Date             time.Time           `json:"date" validate:"required"`
	PONumber         string              `json:"po_number" validate:"required"`
	PODate           time.Time           `json:"po_date" validate:"required"`
	BilledTo         shared.PartyDetails `json:"billed_to" validate:"required"`
	ShippedTo        shared.PartyDetails `json:"shipped_to" validate:"required"`
	GoodsDescription string              `json:"goods_description" validate:"required"`
	HSNCode          string              `json:"hsn_code" validate:"required"`
	FinishedQty      float64             `json:"finished_qty" validate:"required,gt=0"`
	UOM              string              `json:"uom" validate:"required,max=20"`
	DamageQty        float64             `json:"damage_qty" validate:"gte=0"`
	RatePerPiece     float64             `json:"rate_per_piece" validate:"required,gt=0"`
	Remark           string              `json:"remark"`
}

// ListChallansRequest filters the challan list. Search matches challan
// number, PO number or goods description, case-insensitively.
type ListChallansRequest struct {
	Search string `json:"search"`
}

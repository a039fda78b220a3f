package invoices

import (
	"time"

	"github.com/threadline-erp/threadline/internal/shared"
)

type CreateInvoiceRequest struct {
	Date             time.Time           `json:"date" validate:"required"`
	PONumber         string              `json:"po_number" validate:"required"`
	PODate           time.Time           `json:"po_date" validate:"required"`
	BilledTo         shared.PartyDetails `json:"billed_to" validate:"required"`
	ShippedTo        shared.PartyDetails `json:"shipped_to" validate:"required"`
	GoodsDescription string              `json:"goods_description" validate:"required"`
	HSNCode          string              `json:"hsn_code" validate:"required"`
	ChallanQty       float64             `json:"challan_qty" validate:"required,gt=0"`
	UOM              string              `json:"uom" validate:"required,max=20"`
	RatePerPiece     float64             `json:"rate_per_piece" validate:"required,gt=0"`
	Remark           string              `json:"remark"`
}

// ListInvoicesRequest filters the invoice register. Search matches
// invoice number, PO number or goods description, case-insensitively.
type ListInvoicesRequest struct {
	Search string `json:"search"`
}

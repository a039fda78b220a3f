package orders

import "time"

type CreateJobOrderRequest struct {
	Date             time.Time `json:"date" validate:"required"`
	VendorName       string    `json:"vendor_name" validate:"required"`
	GoodsDescription string    `json:"goods_description" validate:"required"`
	Color            string    `json:"color" validate:"required"`
	Quantity         float64   `json:"quantity" validate:"required,gt=0"`
	UOM              string    `json:"uom" validate:"required,max=20"`
	CompletedQty     float64   `json:"completed_qty" validate:"gte=0"`
	DamageQty        float64   `json:"damage_qty" validate:"gte=0"`
	Status           Status    `json:"status"`
	Remark           string    `json:"remark"`
}

// ListJobOrdersRequest filters the job-order list. Search matches order
// number, goods description or color; Vendor and Status are exact
// matches with empty meaning all. All conditions are combined with AND.
type ListJobOrdersRequest struct {
	Search string `json:"search"`
	Vendor string `json:"vendor"`
	Status Status `json:"status"`
}

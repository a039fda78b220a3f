package orders

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses returns every job-order status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// JobOrder is a manufacturing order placed with a vendor.
//
// JobOrderNo is the human-readable document number and the join key used
// by challans and invoices (their PONumber field); the ID is internal.
// CompletedQty is a best-effort cache refreshed at edit time; the
// authoritative figure is always recomputed from challans, see
// reports.ComputeFulfillment.
type JobOrder struct {
	ID               string    `json:"id"`
	JobOrderNo       string    `json:"job_order_no"`
	Date             time.Time `json:"date"`
	VendorName       string    `json:"vendor_name"`
	GoodsDescription string    `json:"goods_description"`
	Color            string    `json:"color"`
	Quantity         float64   `json:"quantity"`
	UOM              string    `json:"uom"`
	CompletedQty     float64   `json:"completed_qty"`
	DamageQty        float64   `json:"damage_qty"`
	Status           Status    `json:"status"`
	Remark           string    `json:"remark"`
}

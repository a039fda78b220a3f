package invoices

// Flat GST rates applied process-wide. Not a tax-law engine; both halves
// are fixed at 9%.
const (
	CGSTRate = 0.09
	SGSTRate = 0.09
)

// Breakdown is the derived money on an invoice.
type Breakdown struct {
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	TotalAmount   float64 `json:"total_amount"`
}

// Amounts computes the tax breakdown for an invoice. Every consumer of an
// invoice total (register rows, exports, dashboard, status report) goes
// through this one function so the formula cannot drift.
func Amounts(inv Invoice) Breakdown {
	taxable := inv.ChallanQty * inv.RatePerPiece
	cgst := taxable * CGSTRate
	sgst := taxable * SGSTRate
	return Breakdown{
		TaxableAmount: taxable,
		CGST:          cgst,
		SGST:          sgst,
		TotalAmount:   taxable + cgst + sgst,
	}
}

package clients

// Client is a directory entry for a business party.
//
// Clients are referenced by documents only as denormalized snapshots
// (shared.PartyDetails), so there is no referential integrity to maintain
// against orders, challans or invoices.
type Client struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin,omitempty"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

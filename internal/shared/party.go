package shared

// PartyDetails is the billed-to / shipped-to snapshot carried on challans
// and invoices. It is copied from the client directory at transaction time
// and is deliberately not linked back by identifier: editing a client must
// not rewrite billing details on documents already issued.
type PartyDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin,omitempty"`
}

package invoices

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/threadline-erp/threadline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, invoice Invoice) (Invoice, error)
	Delete(ctx context.Context, ids []string) error
	FirstByOrderNumber(ctx context.Context, jobOrderNo string) (Invoice, error)
}

// repository keeps invoices in session memory, in insertion order.
type repository struct {
	mu      sync.RWMutex
	records []Invoice
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Invoice, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.records {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, shared.ErrNotFound
}

// Create assigns the internal id and the next INV-xxx document number.
// The number is derived from the current collection size; see the job
// order repository for the reuse caveat after deletes.
func (r *repository) Create(ctx context.Context, invoice Invoice) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	invoice.InvoiceNo = fmt.Sprintf("INV-%03d", len(r.records)+1)
	r.records = append(r.records, invoice)
	return invoice, nil
}

func (r *repository) Delete(ctx context.Context, ids []string) error {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, inv := range r.records {
		if _, ok := drop[inv.ID]; !ok {
			kept = append(kept, inv)
		}
	}
	r.records = kept
	return nil
}

// FirstByOrderNumber returns the first invoice billed against
// jobOrderNo. Later invoices on the same order are not surfaced; the
// status report inherits this single-invoice assumption.
func (r *repository) FirstByOrderNumber(ctx context.Context, jobOrderNo string) (Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.records {
		if inv.PONumber == jobOrderNo {
			return inv, nil
		}
	}
	return Invoice{}, shared.ErrNotFound
}

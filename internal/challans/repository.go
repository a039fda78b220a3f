package challans

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/threadline-erp/threadline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]DeliveryChallan, error)
	Get(ctx context.Context, id string) (DeliveryChallan, error)
	Create(ctx context.Context, challan DeliveryChallan) (DeliveryChallan, error)
	Delete(ctx context.Context, ids []string) error
	ListByOrderNumber(ctx context.Context, jobOrderNo string) ([]DeliveryChallan, error)
	FinishedQuantityByOrder(ctx context.Context, jobOrderNo string) (float64, error)
}

// repository keeps challans in session memory, in insertion order.
type repository struct {
	mu      sync.RWMutex
	records []DeliveryChallan
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) List(ctx context.Context) ([]DeliveryChallan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]DeliveryChallan, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (DeliveryChallan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.records {
		if c.ID == id {
			return c, nil
		}
	}
	return DeliveryChallan{}, shared.ErrNotFound
}

// Create assigns the internal id and the next DC-xxx document number.
// The number is derived from the current collection size; see the job
// order repository for the reuse caveat after deletes.
func (r *repository) Create(ctx context.Context, challan DeliveryChallan) (DeliveryChallan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if challan.ID == "" {
		challan.ID = uuid.NewString()
	}
	challan.ChallanNo = fmt.Sprintf("DC-%03d", len(r.records)+1)
	r.records = append(r.records, challan)
	return challan, nil
}

func (r *repository) Delete(ctx context.Context, ids []string) error {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, c := range r.records {
		if _, ok := drop[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	r.records = kept
	return nil
}

// ListByOrderNumber returns the challans delivered against jobOrderNo,
// matched exactly and case-sensitively.
func (r *repository) ListByOrderNumber(ctx context.Context, jobOrderNo string) ([]DeliveryChallan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []DeliveryChallan
	for _, c := range r.records {
		if c.PONumber == jobOrderNo {
			out = append(out, c)
		}
	}
	return out, nil
}

// FinishedQuantityByOrder sums delivered quantity for jobOrderNo. It
// satisfies orders.ChallanSource.
func (r *repository) FinishedQuantityByOrder(ctx context.Context, jobOrderNo string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, c := range r.records {
		if c.PONumber == jobOrderNo {
			total += c.FinishedQty
		}
	}
	return total, nil
}

package orders

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/threadline-erp/threadline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]JobOrder, error)
	Get(ctx context.Context, id string) (JobOrder, error)
	GetByNumber(ctx context.Context, jobOrderNo string) (JobOrder, error)
	Create(ctx context.Context, order JobOrder) (JobOrder, error)
	Update(ctx context.Context, order JobOrder) error
	Delete(ctx context.Context, ids []string) error
	UpdateStatus(ctx context.Context, ids []string, status Status) error
}

// repository keeps job orders in session memory, in insertion order.
type repository struct {
	mu      sync.RWMutex
	records []JobOrder
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) List(ctx context.Context) ([]JobOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobOrder, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (JobOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.records {
		if o.ID == id {
			return o, nil
		}
	}
	return JobOrder{}, shared.ErrNotFound
}

func (r *repository) GetByNumber(ctx context.Context, jobOrderNo string) (JobOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.records {
		if o.JobOrderNo == jobOrderNo {
			return o, nil
		}
	}
	return JobOrder{}, shared.ErrNotFound
}

// Create assigns the internal id and the next JO-xxx document number.
// The number is derived from the current collection size, so a
// delete-then-create cycle can hand out a number that was used before;
// ids stay unique either way.
func (r *repository) Create(ctx context.Context, order JobOrder) (JobOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	order.JobOrderNo = fmt.Sprintf("JO-%03d", len(r.records)+1)
	r.records = append(r.records, order)
	return order, nil
}

// Update replaces the record matching order.ID. Unknown ids are a
// silent no-op.
func (r *repository) Update(ctx context.Context, order JobOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.records {
		if o.ID == order.ID {
			r.records[i] = order
			return nil
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, ids []string) error {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, o := range r.records {
		if _, ok := drop[o.ID]; !ok {
			kept = append(kept, o)
		}
	}
	r.records = kept
	return nil
}

// UpdateStatus sets every matching order to status in one transition, so
// readers never observe a partially applied bulk update.
func (r *repository) UpdateStatus(ctx context.Context, ids []string, status Status) error {
	match := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		match[id] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.records {
		if _, ok := match[o.ID]; ok {
			r.records[i].Status = status
		}
	}
	return nil
}

package clients

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/threadline-erp/threadline/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, client Client) (Client, error)
	Update(ctx context.Context, client Client) error
	Delete(ctx context.Context, ids []string) error
}

// repository keeps clients in session memory, in insertion order.
type repository struct {
	mu      sync.RWMutex
	records []Client
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) List(ctx context.Context) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Client, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.records {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, shared.ErrNotFound
}

func (r *repository) Create(ctx context.Context, client Client) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	r.records = append(r.records, client)
	return client, nil
}

// Update replaces the record matching client.ID. Unknown ids are a
// silent no-op.
func (r *repository) Update(ctx context.Context, client Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.records {
		if c.ID == client.ID {
			r.records[i] = client
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
	for _, c := range r.records {
		if _, ok := drop[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	r.records = kept
	return nil
}

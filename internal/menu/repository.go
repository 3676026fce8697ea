package menu

import (
	"context"
	"sync"
)

// Repository stores menu items in insertion order. Items with the same name
// may coexist; FindByName returns the earliest one.
type Repository interface {
	Add(ctx context.Context, item Item) error
	FindByName(ctx context.Context, name string) (*Item, bool)
	List(ctx context.Context) []Item
}

type repository struct {
	mu    sync.RWMutex
	items []Item
}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Add(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.Name == name {
			found := it
			return &found, true
		}
	}
	return nil, false
}

func (r *repository) List(ctx context.Context) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

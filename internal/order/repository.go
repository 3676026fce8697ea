package order

import (
	"context"
	"sync"
)

// Repository is the order ledger: an append-only sequence where an order's
// id is its position.
type Repository interface {
	Append(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status, check TransitionCheck) error
	List(ctx context.Context) ([]Order, error)
}

type repository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewRepository() Repository {
	return &repository{}
}

// Append assigns the next id under the same lock as the append so ids stay
// dense under concurrent callers.
func (r *repository) Append(ctx context.Context, o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = len(r.orders)
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 0 || id >= len(r.orders) {
		return nil, ErrOrderNotFound
	}
	o := r.orders[id]
	return &o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status, check TransitionCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 0 || id >= len(r.orders) {
		return ErrOrderNotFound
	}
	if check != nil {
		if err := check(r.orders[id].Status, status); err != nil {
			return err
		}
	}
	r.orders[id].Status = status
	return nil
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

package user

import (
	"context"
	"sync"

	"canteen/internal/auth"
)

// Repository keeps one append-only account list per role. Usernames are not
// unique.
type Repository interface {
	Create(ctx context.Context, acc Account) error
	FindByUsername(ctx context.Context, role auth.Role, username string) []Account
}

type repository struct {
	mu       sync.RWMutex
	accounts map[auth.Role][]Account
}

func NewRepository() Repository {
	return &repository{accounts: make(map[auth.Role][]Account)}
}

func (r *repository) Create(ctx context.Context, acc Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[acc.Role] = append(r.accounts[acc.Role], acc)
	return nil
}

func (r *repository) FindByUsername(ctx context.Context, role auth.Role, username string) []Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Account
	for _, acc := range r.accounts[role] {
		if acc.Username == username {
			out = append(out, acc)
		}
	}
	return out
}

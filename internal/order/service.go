package order

import (
	"context"

	"canteen/internal/logger"
	"canteen/internal/menu"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, student, itemName string, quantity int) (*Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	GetByID(ctx context.Context, orderID int) (*Order, error)
	ComputeStats(ctx context.Context) (Stats, error)
	ListOrders(ctx context.Context) ([]Order, error)
}

// MenuLookup is the part of the menu the ledger needs for pricing.
type MenuLookup interface {
	Lookup(ctx context.Context, name string) (*menu.Item, error)
}

type Option func(*service)

// WithStrictTransitions rejects unknown labels and moves outside the
// Pending -> Accepted/Rejected -> Completed -> Delivered lifecycle.
func WithStrictTransitions() Option {
	return func(s *service) {
		s.check = strictTransition
	}
}

type service struct {
	repo  Repository
	menu  MenuLookup
	check TransitionCheck
}

func NewService(repo Repository, menu MenuLookup, opts ...Option) Service {
	s := &service{repo: repo, menu: menu}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder prices the order from the menu at call time and appends it as
// Pending. Nothing is appended when validation or lookup fails.
func (s *service) PlaceOrder(ctx context.Context, student, itemName string, quantity int) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("item", itemName),
		zap.Int("quantity", quantity),
	)

	if student == "" {
		log.Warn("missing student identity")
		return nil, ErrMissingStudent
	}

	if quantity <= 0 {
		log.Warn("invalid quantity")
		return nil, ErrInvalidQuantity
	}

	item, err := s.menu.Lookup(ctx, itemName)
	if err != nil {
		log.Warn("menu lookup failed", zap.Error(err))
		return nil, err
	}

	o, err := s.repo.Append(ctx, Order{
		Student:    student,
		Item:       item.Name,
		Quantity:   quantity,
		Status:     StatusPending,
		TotalPrice: float64(quantity) * item.Price,
	})
	if err != nil {
		log.Error("failed to append order", zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.Int("order_id", o.ID),
		zap.Float64("total_price", o.TotalPrice),
	)
	return &o, nil
}

// UpdateStatus overwrites the status of an existing order. Outside strict
// mode any label is stored as given.
func (s *service) UpdateStatus(ctx context.Context, orderID int, status string) error {
	log := logger.FromCtx(ctx).With(
		zap.Int("order_id", orderID),
		zap.String("status", status),
	)

	if err := s.repo.UpdateStatus(ctx, orderID, Status(status), s.check); err != nil {
		log.Warn("order status update failed", zap.Error(err))
		return err
	}

	log.Info("order status updated")
	return nil
}

func (s *service) GetByID(ctx context.Context, orderID int) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) ComputeStats(ctx context.Context) (Stats, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(orders), nil
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

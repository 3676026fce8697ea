package menu

import (
	"context"
	"math"
	"strconv"
	"strings"

	"canteen/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	AddItem(ctx context.Context, name, rawPrice string) (*Item, error)
	Lookup(ctx context.Context, name string) (*Item, error)
	ListItems(ctx context.Context) []Item
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddItem parses rawPrice and appends the item. Re-adding an existing name
// appends a second entry; lookups keep returning the first one.
func (s *service) AddItem(ctx context.Context, name, rawPrice string) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("item", name),
		zap.String("raw_price", rawPrice),
	)

	if name == "" || rawPrice == "" {
		log.Warn("add item rejected: missing field")
		return nil, ErrMissingField
	}

	price, err := ParsePrice(rawPrice)
	if err != nil {
		log.Warn("add item rejected: invalid price", zap.Error(err))
		return nil, err
	}

	item := Item{Name: name, Price: price}
	if err := s.repo.Add(ctx, item); err != nil {
		log.Error("failed to add menu item", zap.Error(err))
		return nil, err
	}

	log.Info("menu item added", zap.Float64("price", price))
	return &item, nil
}

func (s *service) Lookup(ctx context.Context, name string) (*Item, error) {
	item, ok := s.repo.FindByName(ctx, name)
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *service) ListItems(ctx context.Context) []Item {
	return s.repo.List(ctx)
}

// ParsePrice accepts a finite, non-negative decimal.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPrice
	}
	return price, nil
}

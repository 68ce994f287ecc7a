package cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
)

// Store loads and saves the cart of a session.
type Store interface {
	LoadCart(ctx context.Context, sessionID string) (*Cart, error)
	SaveCart(ctx context.Context, sessionID string, c *Cart) error
}

// View is the cart as shown to the UI.
type View struct {
	Items      []Item `json:"items"`
	IsOpen     bool   `json:"is_open"`
	TotalItems int    `json:"total_items"`
	Totals     Totals `json:"totals"`
}

// Service applies cart operations to a session's cart, saving after every change.
type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	AddItem(ctx context.Context, sessionID string, item NewItem) (*View, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, qty int) (*View, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*View, error)
	Open(ctx context.Context, sessionID string) (*View, error)
	Close(ctx context.Context, sessionID string) (*View, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func NewView(c *Cart) (*View, error) {
	totals, err := c.Totals()
	if err != nil {
		return nil, err
	}
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return &View{
		Items:      items,
		IsOpen:     c.IsOpen,
		TotalItems: c.TotalItems(),
		Totals:     totals,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewView(c)
}

func (s *service) AddItem(ctx context.Context, sessionID string, item NewItem) (*View, error) {
	return s.mutate(ctx, sessionID, "AddItem", func(c *Cart) error {
		_, err := c.AddItem(item)
		return err
	})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, itemID string, qty int) (*View, error) {
	return s.mutate(ctx, sessionID, "UpdateQuantity", func(c *Cart) error {
		return c.UpdateQuantity(itemID, qty)
	})
}

func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) (*View, error) {
	return s.mutate(ctx, sessionID, "RemoveItem", func(c *Cart) error {
		c.RemoveItem(itemID)
		return nil
	})
}

func (s *service) Open(ctx context.Context, sessionID string) (*View, error) {
	return s.mutate(ctx, sessionID, "Open", func(c *Cart) error {
		c.Open()
		return nil
	})
}

func (s *service) Close(ctx context.Context, sessionID string) (*View, error) {
	return s.mutate(ctx, sessionID, "Close", func(c *Cart) error {
		c.Close()
		return nil
	})
}

func (s *service) load(ctx context.Context, sessionID string) (*Cart, error) {
	c, err := s.store.LoadCart(ctx, sessionID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load cart", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}
	return c, nil
}

func (s *service) mutate(ctx context.Context, sessionID, method string, fn func(*Cart) error) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", method),
	)

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		if !errors.Is(err, ErrCartItemNotFound) && !errors.Is(err, ErrInvalidItem) {
			log.Error("cart mutation failed", zap.Error(err))
		}
		return nil, err
	}

	if err := s.store.SaveCart(ctx, sessionID, c); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}

	log.Debug("cart updated",
		zap.Int("lines", len(c.Items)),
		zap.Int("total_items", c.TotalItems()),
	)
	return NewView(c)
}

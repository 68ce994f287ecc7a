package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/user"
	"storefront-be/internal/verification"
)

const (
	HeaderName = "X-Session-ID"
	CookieName = "session_id"
	keyPrefix  = "session:"
)

var ErrInvalidID = errors.New("invalid session id")

// State is everything the storefront remembers about one visitor between requests.
type State struct {
	ID           string            `json:"id"`
	User         *user.User        `json:"user,omitempty"`
	Cart         cart.Cart         `json:"cart"`
	Verification verification.Flow `json:"verification"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Logout drops the signed-in user; the cart survives.
func (s *State) Logout() {
	s.User = nil
}

type Store interface {
	// Load returns a fresh state when nothing is stored under id.
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, st *State) error
	Delete(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}

// ValidID accepts only ids produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore keeps each state as JSON under session:<id>; every save refreshes the TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl, now: time.Now}
}

func key(id string) string {
	return keyPrefix + id
}

func (s *redisStore) Load(ctx context.Context, id string) (*State, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &State{ID: id}, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load session",
			zap.String("layer", "store"),
			zap.Error(err),
		)
		return nil, err
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		// a corrupt entry is treated as an empty session
		logger.FromCtx(ctx).Warn("discarding unreadable session", zap.Error(err))
		return &State{ID: id}, nil
	}
	st.ID = id
	return &st, nil
}

func (s *redisStore) Save(ctx context.Context, st *State) error {
	if !ValidID(st.ID) {
		return ErrInvalidID
	}

	st.UpdatedAt = s.now().UTC()
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, key(st.ID), payload, s.ttl).Err(); err != nil {
		logger.FromCtx(ctx).Error("failed to save session",
			zap.String("layer", "store"),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, key(id)).Err()
}

type cartStore struct {
	store Store
}

// NewCartStore exposes the cart part of a session to the cart service.
func NewCartStore(store Store) cart.Store {
	return &cartStore{store: store}
}

func (c *cartStore) LoadCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	st, err := c.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &st.Cart, nil
}

func (c *cartStore) SaveCart(ctx context.Context, sessionID string, ct *cart.Cart) error {
	st, err := c.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	st.Cart = *ct
	return c.store.Save(ctx, st)
}

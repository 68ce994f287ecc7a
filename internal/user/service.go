package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-be/internal/logger"
	"storefront-be/internal/utils"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

type Service interface {
	Register(ctx context.Context, in RegisterInput) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, in UpdateInput) (*User, error)
	BackfillConsumerIDs(ctx context.Context) ([]BackfillResult, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("email", in.Email),
	)

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return "", nil, ErrInvalidInput
	}

	consumerID := strings.TrimSpace(in.ConsumerID)
	if consumerID != "" {
		taken, err := s.repo.ConsumerIDTaken(ctx, consumerID, "")
		if err != nil {
			log.Error("failed to check consumer id", zap.Error(err))
			return "", nil, err
		}
		if taken {
			log.Info("consumer id already taken", zap.String("consumer_id", consumerID))
			return "", nil, ErrConsumerIDTaken
		}
	} else {
		generated, err := GenerateConsumerID()
		if err != nil {
			log.Error("failed to generate consumer id", zap.Error(err))
			return "", nil, err
		}
		consumerID = generated
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	// phone ownership is proven by the verification flow before registration
	u, err := s.repo.Create(ctx, &User{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  hashed,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Phone:         in.Phone,
		PhoneVerified: true,
		ConsumerID:    utils.StrPtr(consumerID),
	})
	if err != nil {
		if !errors.Is(err, ErrEmailExists) && !errors.Is(err, ErrConsumerIDTaken) {
			log.Error("failed to create user", zap.Error(err))
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register service completed", zap.String("user_id", u.ID))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("email not found")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Info("password not match", zap.String("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("login service completed", zap.String("user_id", u.ID))
	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies a partial update. A new consumer id must not belong to another user.
func (s *service) UpdateUser(ctx context.Context, id string, in UpdateInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateUser"),
		zap.String("user_id", id),
	)

	if in.Phone == nil && in.ConsumerID == nil {
		return nil, ErrInvalidInput
	}

	if in.ConsumerID != nil {
		trimmed := strings.TrimSpace(*in.ConsumerID)
		if trimmed == "" {
			return nil, ErrInvalidInput
		}
		in.ConsumerID = utils.StrPtr(trimmed)

		taken, err := s.repo.ConsumerIDTaken(ctx, trimmed, id)
		if err != nil {
			log.Error("failed to check consumer id", zap.Error(err))
			return nil, err
		}
		if taken {
			return nil, ErrConsumerIDTaken
		}
	}

	u, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	log.Info("user updated")
	return u, nil
}

// BackfillConsumerIDs assigns a generated consumer id to every user lacking one.
// Per-user failures are reported in the results, not returned as an error.
func (s *service) BackfillConsumerIDs(ctx context.Context) ([]BackfillResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "BackfillConsumerIDs"),
	)

	users, err := s.repo.ListWithoutConsumerID(ctx)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	results := make([]BackfillResult, 0, len(users))
	for _, u := range users {
		consumerID, err := GenerateConsumerID()
		if err != nil {
			log.Error("failed to generate consumer id", zap.String("user_id", u.ID), zap.Error(err))
			results = append(results, BackfillResult{ID: u.ID, Success: false, Error: err.Error()})
			continue
		}
		if err := s.repo.SetConsumerID(ctx, u.ID, consumerID); err != nil {
			log.Error("failed to set consumer id", zap.String("user_id", u.ID), zap.Error(err))
			results = append(results, BackfillResult{ID: u.ID, Success: false, Error: err.Error()})
			continue
		}
		results = append(results, BackfillResult{ID: u.ID, Success: true, ConsumerID: consumerID})
	}

	log.Info("consumer ids backfilled", zap.Int("users", len(users)))
	return results, nil
}

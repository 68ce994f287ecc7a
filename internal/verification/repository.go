package verification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, v *Verification) (*Verification, error)
	FindActive(ctx context.Context, phone, code string, now time.Time) (*Verification, error)
	MarkVerified(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Verification) (*Verification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("phone", v.Phone),
	)

	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO phone_verifications (id, phone, code, verified, expires_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING created_at`,
		v.ID, v.Phone, v.Code, v.ExpiresAt,
	).Scan(&v.CreatedAt)
	if err != nil {
		log.Error("failed to insert verification", zap.Error(err))
		return nil, err
	}

	log.Info("verification created", zap.String("verification_id", v.ID))
	return v, nil
}

// FindActive returns the most recent unverified row for phone and code that
// has not expired at now.
func (r *repository) FindActive(ctx context.Context, phone, code string, now time.Time) (*Verification, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FindActive"),
		zap.String("phone", phone),
	)

	var v Verification
	err := r.db.QueryRowContext(ctx, `
		SELECT id, phone, code, verified, expires_at, created_at
		FROM phone_verifications
		WHERE phone = $1 AND code = $2 AND verified = false AND expires_at >= $3
		ORDER BY created_at DESC
		LIMIT 1`,
		phone, code, now,
	).Scan(&v.ID, &v.Phone, &v.Code, &v.Verified, &v.ExpiresAt, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("no active verification")
			return nil, ErrCodeInvalid
		}
		log.Error("failed to query verification", zap.Error(err))
		return nil, err
	}

	return &v, nil
}

// MarkVerified flips verified once; a row that is already verified yields ErrCodeInvalid.
func (r *repository) MarkVerified(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "MarkVerified"),
		zap.String("verification_id", id),
	)

	res, err := r.db.ExecContext(ctx,
		`UPDATE phone_verifications SET verified = true WHERE id = $1 AND verified = false`,
		id,
	)
	if err != nil {
		log.Error("failed to mark verified", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("verification already used")
		return ErrCodeInvalid
	}
	return nil
}

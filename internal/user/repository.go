package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"storefront-be/internal/logger"
)

const uniqueViolation = "23505"

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	ConsumerIDTaken(ctx context.Context, consumerID, excludeUserID string) (bool, error)
	Update(ctx context.Context, id string, in UpdateInput) (*User, error)
	ListWithoutConsumerID(ctx context.Context) ([]User, error)
	SetConsumerID(ctx context.Context, id, consumerID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, phone, phone_verified, consumer_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*User, error) {
	var u User
	var consumerID sql.NullString
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Phone, &u.PhoneVerified, &consumerID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if consumerID.Valid {
		u.ConsumerID = &consumerID.String
	}
	return &u, nil
}

// mapUniqueViolation turns a users unique-constraint error into the matching sentinel.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return err
	}
	if pqErr.Constraint == "users_consumer_id_key" {
		return ErrConsumerIDTaken
	}
	return ErrEmailExists
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", u.Email),
	)

	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, phone_verified, consumer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.PhoneVerified, u.ConsumerID,
	))
	if err != nil {
		mapped := mapUniqueViolation(err)
		if errors.Is(mapped, ErrEmailExists) || errors.Is(mapped, ErrConsumerIDTaken) {
			log.Info("user already exists", zap.Error(mapped))
			return nil, mapped
		}
		log.Error("db: failed to insert user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.String("user_id", created.ID))
	return created, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "FindByEmail", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, "FindByID", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, method, query string, arg string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error("failed to scan user", zap.Error(err))
		return nil, err
	}
	return u, nil
}

// ConsumerIDTaken reports whether another user (not excludeUserID) holds consumerID.
func (r *repository) ConsumerIDTaken(ctx context.Context, consumerID, excludeUserID string) (bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ConsumerIDTaken"),
		zap.String("consumer_id", consumerID),
	)

	var taken bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE consumer_id = $1 AND id <> $2)`,
		consumerID, excludeUserID,
	).Scan(&taken)
	if err != nil {
		log.Error("failed to check consumer id", zap.Error(err))
		return false, err
	}
	return taken, nil
}

func (r *repository) Update(ctx context.Context, id string, in UpdateInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Update"),
		zap.String("user_id", id),
	)

	// COALESCE keeps existing values for nil inputs
	query := `
		UPDATE users
		SET phone = COALESCE($2, phone),
			consumer_id = COALESCE($3, consumer_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id, in.Phone, in.ConsumerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		mapped := mapUniqueViolation(err)
		if errors.Is(mapped, ErrConsumerIDTaken) {
			return nil, mapped
		}
		log.Error("failed to update user", zap.Error(err))
		return nil, err
	}

	log.Info("user updated successfully")
	return u, nil
}

func (r *repository) ListWithoutConsumerID(ctx context.Context) ([]User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListWithoutConsumerID"),
	)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE consumer_id IS NULL ORDER BY created_at`)
	if err != nil {
		log.Error("failed to query users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user", zap.Error(err))
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows error", zap.Error(err))
		return nil, err
	}

	return users, nil
}

func (r *repository) SetConsumerID(ctx context.Context, id, consumerID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SetConsumerID"),
		zap.String("user_id", id),
	)

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET consumer_id = $1, updated_at = NOW() WHERE id = $2`,
		consumerID, id,
	)
	if err != nil {
		log.Error("failed to set consumer id", zap.Error(err))
		return mapUniqueViolation(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

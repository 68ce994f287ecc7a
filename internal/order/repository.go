package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-be/internal/logger"
)

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]Order, error)
	Claim(ctx context.Context, orderID, paymentKey string) error
	Release(ctx context.Context, orderID string) error
	MarkCompleted(ctx context.Context, orderID, paymentKey string) error
	MarkFailed(ctx context.Context, orderID string) error
	SetTrackingNumber(ctx context.Context, orderID, trackingNumber string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, order_id, payment_key, amount, status, customer_email, customer_name, customer_phone, tracking_number, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*Order, error) {
	var o Order
	var userID, tracking sql.NullString
	err := row.Scan(
		&o.ID, &userID, &o.OrderID, &o.PaymentKey, &o.Amount, &o.Status,
		&o.CustomerEmail, &o.CustomerName, &o.CustomerPhone, &tracking,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		o.UserID = &userID.String
	}
	if tracking.Valid {
		o.TrackingNumber = &tracking.String
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("order_id", o.OrderID),
	)

	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	query := `
		INSERT INTO orders (id, user_id, order_id, payment_key, amount, status, customer_email, customer_name, customer_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns

	created, err := scanOrder(r.db.QueryRowContext(ctx, query,
		o.ID, o.UserID, o.OrderID, o.PaymentKey, o.Amount, o.Status,
		o.CustomerEmail, o.CustomerName, o.CustomerPhone,
	))
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	log.Info("order created", zap.Int64("amount", created.Amount))
	return created, nil
}

func (r *repository) GetByOrderID(ctx context.Context, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByOrderID"),
		zap.String("order_id", orderID),
	)

	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("order not found")
			return nil, ErrOrderNotFound
		}
		log.Error("failed to scan order", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, "ListAll",
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *repository) ListByCustomerEmail(ctx context.Context, email string) ([]Order, error) {
	return r.list(ctx, "ListByCustomerEmail",
		`SELECT `+orderColumns+` FROM orders WHERE customer_email = $1 ORDER BY created_at DESC`, email)
}

func (r *repository) list(ctx context.Context, method, query string, args ...any) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows error", zap.Error(err))
		return nil, err
	}

	log.Info("orders fetched", zap.Int("count", len(orders)))
	return orders, nil
}

// Claim moves a pending order to processing and records the payment key
// about to be confirmed. Only one caller can win the claim.
func (r *repository) Claim(ctx context.Context, orderID, paymentKey string) error {
	return r.updateStatus(ctx, "Claim", `
		UPDATE orders
		SET status = 'processing', payment_key = $2, updated_at = NOW()
		WHERE order_id = $1 AND status = 'pending'`,
		orderID, paymentKey)
}

func (r *repository) Release(ctx context.Context, orderID string) error {
	return r.updateStatus(ctx, "Release", `
		UPDATE orders
		SET status = 'pending', updated_at = NOW()
		WHERE order_id = $1 AND status = 'processing'`,
		orderID)
}

// MarkCompleted moves a claimed order to completed. Re-completing is allowed
// with an empty key or the key already stored.
func (r *repository) MarkCompleted(ctx context.Context, orderID, paymentKey string) error {
	return r.updateStatus(ctx, "MarkCompleted", `
		UPDATE orders
		SET status = 'completed',
			payment_key = COALESCE(NULLIF($2, ''), payment_key),
			updated_at = NOW()
		WHERE order_id = $1
			AND (status = 'processing' OR (status = 'completed' AND ($2 = '' OR payment_key = $2)))`,
		orderID, paymentKey)
}

func (r *repository) MarkFailed(ctx context.Context, orderID string) error {
	return r.updateStatus(ctx, "MarkFailed", `
		UPDATE orders
		SET status = 'failed', updated_at = NOW()
		WHERE order_id = $1 AND status IN ('pending', 'processing')`,
		orderID)
}

func (r *repository) updateStatus(ctx context.Context, method, query string, args ...any) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		log.Info("order not in a state that allows this transition")
		return ErrInvalidTransition
	}
	return nil
}

// SetTrackingNumber only touches completed orders that have no tracking number yet.
func (r *repository) SetTrackingNumber(ctx context.Context, orderID, trackingNumber string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SetTrackingNumber"),
		zap.String("order_id", orderID),
	)

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET tracking_number = $2, updated_at = NOW()
		WHERE order_id = $1 AND status = 'completed' AND tracking_number IS NULL`,
		orderID, trackingNumber)
	if err != nil {
		log.Error("failed to set tracking number", zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTrackingNotAllowed
	}

	log.Info("tracking number stored", zap.String("tracking_number", trackingNumber))
	return nil
}

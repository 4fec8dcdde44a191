package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vitrine/internal/model"
)

// allocateAttempts bounds the collision retry loop. The orders.number UNIQUE
// constraint is the actual uniqueness guarantee; the loop only regenerates a
// candidate after the insert itself reports a duplicate key.
const allocateAttempts = 5

var (
	ErrAllocateExhausted = errors.New("order number allocation exhausted")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotPending   = errors.New("order is not pending")
)

type OrderService struct {
	db *sql.DB
}

func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

// NewOrderNumber builds a human-readable candidate identifier. The random
// suffix keeps candidates from the same nanosecond apart; real uniqueness is
// still settled by the database constraint.
func NewOrderNumber() string {
	b := make([]byte, 2)
	_, _ = rand.Read(b)
	return fmt.Sprintf("ORD-%d-%X", time.Now().UnixNano(), b)
}

// allocate runs the bounded regenerate-and-retry loop around an insert
// attempt. Only duplicate-key conflicts trigger a retry; any other error is
// returned as-is.
func allocate(insert func(number string) error) (string, error) {
	for attempt := 0; attempt < allocateAttempts; attempt++ {
		number := NewOrderNumber()
		err := insert(number)
		if err == nil {
			return number, nil
		}
		if !isUniqueViolation(err) {
			return "", err
		}
	}
	return "", ErrAllocateExhausted
}

func (s *OrderService) Create(ctx context.Context, userID, propertyID string, amount float64, currency, sourceURL string) (*model.Order, error) {
	if currency == "" {
		currency = "EUR"
	}

	var order model.Order
	number, err := allocate(func(number string) error {
		now := time.Now()
		row := s.db.QueryRowContext(ctx, `
			INSERT INTO orders (number, user_id, property_id, amount, currency, status, source_url, created_at, expires_at)
			VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, expires_at
		`, number, userID, propertyID, amount, currency, model.OrderPending, sourceURL, now, now.Add(model.OrderTTL))
		return row.Scan(&order.ID, &order.CreatedAt, &order.ExpiresAt)
	})
	if err != nil {
		if errors.Is(err, ErrAllocateExhausted) {
			return nil, err
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	order.Number = number
	order.UserID = userID
	order.PropertyID = propertyID
	order.Amount = amount
	order.Currency = currency
	order.Status = model.OrderPending
	order.SourceURL = sourceURL

	return &order, nil
}

// MarkPaid transitions a pending order to paid exactly once, recording the
// provider correlation reference.
func (s *OrderService) MarkPaid(ctx context.Context, number, provider, reference string) error {
	refColumn := "stripe_ref"
	if provider == "paypal" || provider == "crypto" {
		refColumn = "paypal_ref"
	}

	query := fmt.Sprintf(`
		UPDATE orders SET status = $1, %s = $2, paid_at = NOW()
		WHERE number = $3 AND status = $4
	`, refColumn)

	res, err := s.db.ExecContext(ctx, query, model.OrderPaid, reference, number, model.OrderPending)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		var status string
		err := s.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE number = $1`, number).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		return ErrOrderNotPending
	}

	return nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, user_id, COALESCE(property_id::text, ''), amount, currency, status,
		       source_url, stripe_ref, paypal_ref, created_at, expires_at, paid_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var paidAt sql.NullTime
		if err := rows.Scan(&o.ID, &o.Number, &o.UserID, &o.PropertyID, &o.Amount, &o.Currency,
			&o.Status, &o.SourceURL, &o.StripeRef, &o.PayPalRef, &o.CreatedAt, &o.ExpiresAt, &paidAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if paidAt.Valid {
			o.PaidAt = &paidAt.Time
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

// ListPending returns unpaid, unexpired orders for the reconciliation worker.
func (s *OrderService) ListPending(ctx context.Context, limit int) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, user_id, COALESCE(property_id::text, ''), amount, currency, status,
		       source_url, stripe_ref, paypal_ref, created_at, expires_at, paid_at
		FROM orders
		WHERE status = $1 AND expires_at > NOW()
		ORDER BY created_at ASC
		LIMIT $2
	`, model.OrderPending, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var paidAt sql.NullTime
		if err := rows.Scan(&o.ID, &o.Number, &o.UserID, &o.PropertyID, &o.Amount, &o.Currency,
			&o.Status, &o.SourceURL, &o.StripeRef, &o.PayPalRef, &o.CreatedAt, &o.ExpiresAt, &paidAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if paidAt.Valid {
			o.PaidAt = &paidAt.Time
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

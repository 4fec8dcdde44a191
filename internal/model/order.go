package model

import (
	"time"
)

const (
	OrderPending = "pending"
	OrderPaid    = "paid"
)

// OrderTTL is how long an unpaid order stays valid.
const OrderTTL = 90 * 24 * time.Hour

type Order struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	UserID     string     `json:"user_id"`
	PropertyID string     `json:"property_id,omitempty"`
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	Status     string     `json:"status"`
	SourceURL  string     `json:"source_url,omitempty"`
	StripeRef  string     `json:"stripe_ref,omitempty"`
	PayPalRef  string     `json:"paypal_ref,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

// Expired reports whether the order has passed its expiry timestamp without
// being paid. Expiry is passive: nothing rewrites the row.
func (o *Order) Expired(now time.Time) bool {
	return o.Status == OrderPending && now.After(o.ExpiresAt)
}

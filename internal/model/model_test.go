package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidDPE(t *testing.T) {
	for _, g := range []string{"A", "b", "G", "En cours", "EN COURS", "en cours"} {
		assert.True(t, ValidDPE(g), "grade %q", g)
	}
	for _, g := range []string{"", "H", "AA", "en  cours", "pending"} {
		assert.False(t, ValidDPE(g), "grade %q", g)
	}
}

func TestOrderExpired(t *testing.T) {
	now := time.Now()
	o := &Order{Status: OrderPending, ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, o.Expired(now))

	o.ExpiresAt = now.Add(time.Hour)
	assert.False(t, o.Expired(now))

	// Paid orders never expire.
	o.Status = OrderPaid
	o.ExpiresAt = now.Add(-time.Hour)
	assert.False(t, o.Expired(now))
}

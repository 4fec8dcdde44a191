package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vitrine/internal/service"
)

// PaymentWorker reconciles pending orders against the payment provider.
// The provider webhook is the primary paid signal; this poller catches
// callbacks that never arrived.
type PaymentWorker struct {
	orderSvc   *service.OrderService
	paymentSvc *service.PaymentClient
	interval   time.Duration
	batchSize  int
}

func NewPaymentWorker(orderSvc *service.OrderService, paymentSvc *service.PaymentClient) *PaymentWorker {
	return &PaymentWorker{
		orderSvc:   orderSvc,
		paymentSvc: paymentSvc,
		interval:   30 * time.Second,
		batchSize:  5,
	}
}

func (w *PaymentWorker) Start(ctx context.Context) {
	slog.Info("starting payment worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("payment worker stopped")
			return
		case <-ticker.C:
			if err := w.processBatch(ctx); err != nil {
				slog.Error("batch processing failed", "error", err)
			}
		}
	}
}

func (w *PaymentWorker) processBatch(ctx context.Context) error {
	orders, err := w.orderSvc.ListPending(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending orders: %w", err)
	}

	for _, order := range orders {
		charge, err := w.paymentSvc.GetCharge(ctx, order.Number)
		if err != nil {
			if errors.Is(err, service.ErrChargeNotFound) {
				continue
			}
			slog.Error("failed to check charge", "order", order.Number, "error", err)
			continue
		}

		if charge.Status != "paid" {
			continue
		}

		if err := w.orderSvc.MarkPaid(ctx, order.Number, charge.Provider, charge.Reference); err != nil {
			if errors.Is(err, service.ErrOrderNotPending) {
				continue // webhook won the race
			}
			slog.Error("failed to mark order paid", "order", order.Number, "error", err)
		} else {
			slog.Info("order reconciled as paid", "number", order.Number, "provider", charge.Provider)
		}
	}

	return nil
}

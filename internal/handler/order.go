package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vitrine/internal/mw"
	"vitrine/internal/service"
)

type createOrderRequest struct {
	PropertyID string  `json:"property_id,omitempty"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency,omitempty"`
	SourceURL  string  `json:"source_url,omitempty"`
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(mw.UserCtxKey).(string)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if req.Amount <= 0 {
			respondError(w, http.StatusBadRequest, "amount must be positive")
			return
		}

		order, err := orderSvc.Create(r.Context(), userID, req.PropertyID, req.Amount, req.Currency, req.SourceURL)
		if err != nil {
			slog.Error("order create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		respondJSON(w, http.StatusCreated, order)
	}
}

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(mw.UserCtxKey).(string)

		orders, err := orderSvc.ListByUser(r.Context(), userID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondJSON(w, http.StatusOK, orders)
	}
}

type paymentCallback struct {
	Order     string `json:"order"`
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// PaymentCallbackHandler is the provider webhook that flips an order from
// pending to paid. Replaying a callback for an already-paid order is OK.
func PaymentCallbackHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cb paymentCallback
		if err := json.NewDecoder(r.Body).Decode(&cb); err != nil {
			respondError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if cb.Order == "" || cb.Status != "paid" {
			respondError(w, http.StatusBadRequest, "unsupported callback")
			return
		}

		err := orderSvc.MarkPaid(r.Context(), cb.Order, cb.Provider, cb.Reference)
		switch {
		case err == nil, errors.Is(err, service.ErrOrderNotPending):
			w.WriteHeader(http.StatusOK)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "order not found")
		default:
			slog.Error("payment callback failed", "order", cb.Order, "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")
		}
	}
}

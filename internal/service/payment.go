package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaymentClient queries the payment provider's charge-status endpoint. The
// provider itself (Stripe, PayPal, crypto processor) is a black box behind a
// simple request/response contract.
type PaymentClient struct {
	baseURL string
	client  *http.Client
}

type ChargeStatus struct {
	Order     string `json:"order"`
	Status    string `json:"status"` // pending, paid, failed
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}

var ErrChargeNotFound = errors.New("charge not registered")

func NewPaymentClient(baseURL string) *PaymentClient {
	return &PaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *PaymentClient) GetCharge(ctx context.Context, number string) (*ChargeStatus, error) {
	url := fmt.Sprintf("%s/api/charges/%s", c.baseURL, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var res ChargeStatus
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &res, nil
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrChargeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}
}

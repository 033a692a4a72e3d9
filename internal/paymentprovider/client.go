// Package paymentprovider реализует клиент платёжного шлюза Stripe.
// Сервис не хранит платёжные намерения локально: создание намерения
// делегируется шлюзу, client_secret возвращается вызывающему как есть.
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client клиент Stripe API.
type Client struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Stripe.
func NewClient(secretKey string) *Client {
	return &Client{
		secretKey:  secretKey,
		apiURL:     "https://api.stripe.com/v1",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePaymentIntent создаёт платёжное намерение на указанную сумму.
// Каждый вызов получает собственный Idempotency-Key, повтор запроса
// при сетевой ошибке не создаст второй платёж на стороне шлюза.
func (c *Client) CreatePaymentIntent(ctx context.Context, reqParams CreateIntentRequest) (*PaymentIntent, error) {
	const op = "paymentprovider.CreatePaymentIntent"

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(reqParams.Amount, 10))
	form.Set("currency", reqParams.Currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%s: %s: %s", op, resp.Status, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &intent, nil
}

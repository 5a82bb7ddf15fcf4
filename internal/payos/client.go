package payos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"luluspa-booking/pkg/utils"
)

const defaultTimeout = 10 * time.Second

// LinkCreator is the consumed payment-provider contract. The caller is
// responsible for not issuing duplicate requests; the client never retries.
type LinkCreator interface {
	CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (*PaymentLink, error)
}

type CreateLinkRequest struct {
	OrderCode   int64    `json:"orderCode"`
	Amount      int64    `json:"amount"`
	OrderName   string   `json:"orderName"`
	Description string   `json:"description"`
	ReturnURL   string   `json:"returnUrl"`
	CancelURL   string   `json:"cancelUrl"`
	BookingIDs  []string `json:"bookingIds"`
}

type PaymentLink struct {
	CheckoutURL string `json:"checkoutUrl"`
	QRCode      string `json:"qrCode"`
}

// linkResponse is the provider envelope; any non-zero Error or missing
// Data is a failure.
type linkResponse struct {
	Error   int          `json:"error"`
	Message string       `json:"message"`
	Data    *PaymentLink `json:"data"`
}

// Client is the PayOS HTTP client.
type Client struct {
	baseURL  string
	clientID string
	apiKey   string
	http     *http.Client
}

func NewClient(config utils.PayOSConfig) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL:  strings.TrimRight(config.BaseURL, "/"),
		clientID: config.ClientID,
		apiKey:   config.APIKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// CreatePaymentLink requests a checkout URL and QR code for one order.
// Incomplete requests are rejected before anything goes on the wire.
func (c *Client) CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (*PaymentLink, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, fmt.Errorf("payos config error: base_url is empty")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("payos request error: %w", err)
	}

	url := c.baseURL + "/payments/create-payment-link"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("payos request error: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.clientID != "" {
		httpReq.Header.Set("x-client-id", c.clientID)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payos network error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("payos response error: status=%d: %w", resp.StatusCode, err)
	}

	var envelope linkResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("payos response error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || envelope.Error != 0 || envelope.Data == nil {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("payos error: %s", msg)
	}

	return envelope.Data, nil
}

// validateRequest fails fast on partial data so an incomplete request is
// never sent to the provider.
func validateRequest(req CreateLinkRequest) error {
	switch {
	case req.Amount <= 0:
		return fmt.Errorf("payos request error: amount must be greater than 0")
	case req.OrderName == "":
		return fmt.Errorf("payos request error: orderName is empty")
	case req.Description == "":
		return fmt.Errorf("payos request error: description is empty")
	case req.ReturnURL == "":
		return fmt.Errorf("payos request error: returnUrl is empty")
	case req.CancelURL == "":
		return fmt.Errorf("payos request error: cancelUrl is empty")
	case len(req.BookingIDs) == 0:
		return fmt.Errorf("payos request error: bookingIds is empty")
	}
	return nil
}

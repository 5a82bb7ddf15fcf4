package payos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"luluspa-booking/pkg/utils"
)

func validLinkRequest() CreateLinkRequest {
	return CreateLinkRequest{
		OrderCode:   123456,
		Amount:      800000,
		OrderName:   "Deep Cleansing Facial",
		Description: "Service Deep Cleansing F",
		ReturnURL:   "https://spa.example/return",
		CancelURL:   "https://spa.example/cancel",
		BookingIDs:  []string{"BOOK-1"},
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(utils.PayOSConfig{
		BaseURL:  baseURL,
		ClientID: "client-id",
		APIKey:   "api-key",
		Timeout:  2 * time.Second,
	})
}

func TestCreatePaymentLink(t *testing.T) {
	var got CreateLinkRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/payments/create-payment-link" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("x-client-id") != "client-id" || r.Header.Get("x-api-key") != "api-key" {
			t.Error("auth headers missing")
		}
		json.NewDecoder(r.Body).Decode(&got)

		json.NewEncoder(w).Encode(linkResponse{
			Error:   0,
			Message: "success",
			Data: &PaymentLink{
				CheckoutURL: "https://pay.payos.vn/web/abc",
				QRCode:      "qr-data",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	link, err := client.CreatePaymentLink(context.Background(), validLinkRequest())
	if err != nil {
		t.Fatalf("CreatePaymentLink: %v", err)
	}

	if link.CheckoutURL != "https://pay.payos.vn/web/abc" {
		t.Errorf("checkout url = %q", link.CheckoutURL)
	}
	if got.OrderCode != 123456 || got.Amount != 800000 {
		t.Errorf("posted request = %+v", got)
	}
}

func TestCreatePaymentLinkProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(linkResponse{Error: 21, Message: "invalid signature"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreatePaymentLink(context.Background(), validLinkRequest())
	if err == nil {
		t.Fatal("expected error for provider failure envelope")
	}
	if !strings.Contains(err.Error(), "invalid signature") {
		t.Errorf("error %q does not carry the provider message", err)
	}
}

func TestCreatePaymentLinkHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":0,"message":"oops"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.CreatePaymentLink(context.Background(), validLinkRequest()); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestCreatePaymentLinkMissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(linkResponse{Error: 0, Message: "success"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.CreatePaymentLink(context.Background(), validLinkRequest()); err == nil {
		t.Fatal("expected error when envelope has no data")
	}
}

func TestCreatePaymentLinkValidatesBeforeSending(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	tests := []struct {
		name   string
		mutate func(*CreateLinkRequest)
	}{
		{"zero amount", func(r *CreateLinkRequest) { r.Amount = 0 }},
		{"empty order name", func(r *CreateLinkRequest) { r.OrderName = "" }},
		{"empty description", func(r *CreateLinkRequest) { r.Description = "" }},
		{"empty return url", func(r *CreateLinkRequest) { r.ReturnURL = "" }},
		{"empty cancel url", func(r *CreateLinkRequest) { r.CancelURL = "" }},
		{"no bookings", func(r *CreateLinkRequest) { r.BookingIDs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLinkRequest()
			tt.mutate(&req)
			if _, err := client.CreatePaymentLink(context.Background(), req); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if requests != 0 {
		t.Errorf("%d requests reached the provider despite invalid input", requests)
	}
}

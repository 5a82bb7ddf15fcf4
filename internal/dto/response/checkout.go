package response

// CheckoutResponse reports the state of one checkout attempt.
type CheckoutResponse struct {
	State       string  `json:"state"`
	OrderCode   int64   `json:"orderCode,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	CheckoutURL string  `json:"checkoutUrl,omitempty"`
	QRCode      string  `json:"qrCode,omitempty"`
	Warning     string  `json:"warning,omitempty"`
}

// PaymentLinkResponse is the legacy envelope the original web client
// expects from /api/payments/create-payment-link.
type PaymentLinkResponse struct {
	Error   int              `json:"error"`
	Message string           `json:"message"`
	Data    *PaymentLinkData `json:"data,omitempty"`
}

type PaymentLinkData struct {
	CheckoutURL string `json:"checkoutUrl"`
	QRCode      string `json:"qrCode"`
}

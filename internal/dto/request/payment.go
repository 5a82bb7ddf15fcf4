package request

// CreatePaymentLinkRequest is the body the legacy web client posts to
// /api/payments/create-payment-link. The orchestrator recomputes the
// amount and booking set from the store; the body is accepted for
// compatibility and cross-checked, never trusted for charging.
type CreatePaymentLinkRequest struct {
	Amount      float64  `json:"amount"`
	OrderName   string   `json:"orderName"`
	Description string   `json:"description"`
	ReturnURL   string   `json:"returnUrl"`
	CancelURL   string   `json:"cancelUrl"`
	BookingIDs  []string `json:"bookingIds"`
}

// PaymentWebhookRequest is the provider callback payload.
type PaymentWebhookRequest struct {
	OrderCode int64  `json:"orderCode" validate:"required"`
	Success   bool   `json:"success"`
	Code      string `json:"code,omitempty"`
	Desc      string `json:"desc,omitempty"`
}

package interfaces

import "context"

// PaymentIntent is the provider-side record backing an escrow hold. Status
// values follow the provider's vocabulary ("requires_capture" while held,
// "succeeded" once captured, "canceled" when voided).

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret,omitempty"`
	Status       string `json:"status"`
	AmountCents  int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentMethod is a stored card/account usable for holds.

type PaymentMethod struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Brand string `json:"brand,omitempty"`
	Last4 string `json:"last4,omitempty"`
}

// PaymentIntentRequest describes a hold or charge to create. CaptureManually
// true creates an authorization that is captured later (the escrow hold).
// IdempotencyKey dedupes retries of the same logical operation.

type PaymentIntentRequest struct {
	AmountCents     int64
	Currency        string
	CustomerID      string
	PaymentMethodID string
	CaptureManually bool
	IdempotencyKey  string
	Metadata        map[string]string
}

// IPaymentGateway abstracts the external payment provider.
//
// All calls are idempotent under their idempotency key; a timed-out call must
// be re-queried with GetPaymentIntent before being treated as failed.

type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name, phone string) (string, error)
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, id, paymentMethodID string) (PaymentIntent, error)
	CapturePaymentIntent(ctx context.Context, id, idempotencyKey string) (PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, id, idempotencyKey string) (PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (PaymentIntent, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]PaymentMethod, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
}

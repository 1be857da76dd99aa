package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mechmarket/internal/usecase/interfaces"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const (
	defaultStripeBaseURL = "https://api.stripe.com/v1"
	requestTimeout       = 15 * time.Second
)

// StripeGateway talks to the Stripe REST API directly: form-encoded
// requests, bearer auth, Idempotency-Key header for every mutating call.
//
// The escrow hold maps to a manual-capture payment intent; release maps to
// capture. Callers own retry policy; this adapter performs exactly one HTTP
// round trip per call.

type StripeGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if strings.TrimSpace(secretKey) == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	return &StripeGateway{
		secretKey: secretKey,
		baseURL:   defaultStripeBaseURL,
		client:    &http.Client{Timeout: requestTimeout},
	}, nil
}

// stripeError is the error envelope Stripe wraps failures in.

type stripeError struct {
	Err struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type stripeCustomer struct {
	ID string `json:"id"`
}

type stripeIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type stripePaymentMethod struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Card struct {
		Brand string `json:"brand"`
		Last4 string `json:"last4"`
	} `json:"card"`
}

type stripeList struct {
	Data []stripePaymentMethod `json:"data"`
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name, phone string) (string, error) {
	form := url.Values{}
	if email != "" {
		form.Set("email", email)
	}
	if name != "" {
		form.Set("name", name)
	}
	if phone != "" {
		form.Set("phone", phone)
	}

	var out stripeCustomer
	if err := g.do(ctx, http.MethodPost, "/customers", form, "", &out); err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] customer created customer_id=%s", out.ID)
	return out.ID, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req interfaces.PaymentIntentRequest) (interfaces.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	form.Set("currency", req.Currency)
	if req.CustomerID != "" {
		form.Set("customer", req.CustomerID)
	}
	if req.PaymentMethodID != "" {
		form.Set("payment_method", req.PaymentMethodID)
	}
	if req.CaptureManually {
		form.Set("capture_method", "manual")
	}
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var out stripeIntent
	if err := g.do(ctx, http.MethodPost, "/payment_intents", form, req.IdempotencyKey, &out); err != nil {
		return interfaces.PaymentIntent{}, err
	}
	log.Printf("[payment][gateway] intent created payment_intent_id=%s status=%s amount=%d", out.ID, out.Status, out.Amount)
	return fromStripeIntent(out), nil
}

func (g *StripeGateway) ConfirmPaymentIntent(ctx context.Context, id, paymentMethodID string) (interfaces.PaymentIntent, error) {
	form := url.Values{}
	if paymentMethodID != "" {
		form.Set("payment_method", paymentMethodID)
	}
	var out stripeIntent
	if err := g.do(ctx, http.MethodPost, "/payment_intents/"+id+"/confirm", form, "", &out); err != nil {
		return interfaces.PaymentIntent{}, err
	}
	return fromStripeIntent(out), nil
}

func (g *StripeGateway) CapturePaymentIntent(ctx context.Context, id, idempotencyKey string) (interfaces.PaymentIntent, error) {
	var out stripeIntent
	if err := g.do(ctx, http.MethodPost, "/payment_intents/"+id+"/capture", url.Values{}, idempotencyKey, &out); err != nil {
		return interfaces.PaymentIntent{}, err
	}
	log.Printf("[payment][gateway] intent captured payment_intent_id=%s status=%s", out.ID, out.Status)
	return fromStripeIntent(out), nil
}

func (g *StripeGateway) CancelPaymentIntent(ctx context.Context, id, idempotencyKey string) (interfaces.PaymentIntent, error) {
	var out stripeIntent
	if err := g.do(ctx, http.MethodPost, "/payment_intents/"+id+"/cancel", url.Values{}, idempotencyKey, &out); err != nil {
		return interfaces.PaymentIntent{}, err
	}
	log.Printf("[payment][gateway] intent canceled payment_intent_id=%s status=%s", out.ID, out.Status)
	return fromStripeIntent(out), nil
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, id string) (interfaces.PaymentIntent, error) {
	var out stripeIntent
	if err := g.do(ctx, http.MethodGet, "/payment_intents/"+id, nil, "", &out); err != nil {
		return interfaces.PaymentIntent{}, err
	}
	return fromStripeIntent(out), nil
}

func (g *StripeGateway) ListPaymentMethods(ctx context.Context, customerID string) ([]interfaces.PaymentMethod, error) {
	var out stripeList
	path := "/payment_methods?customer=" + url.QueryEscape(customerID) + "&type=card"
	if err := g.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return nil, err
	}
	methods := make([]interfaces.PaymentMethod, 0, len(out.Data))
	for _, pm := range out.Data {
		methods = append(methods, interfaces.PaymentMethod{
			ID:    pm.ID,
			Type:  pm.Type,
			Brand: pm.Card.Brand,
			Last4: pm.Card.Last4,
		})
	}
	return methods, nil
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	form := url.Values{}
	form.Set("customer", customerID)
	var out stripePaymentMethod
	return g.do(ctx, http.MethodPost, "/payment_methods/"+paymentMethodID+"/attach", form, "", &out)
}

func (g *StripeGateway) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	var out stripePaymentMethod
	return g.do(ctx, http.MethodPost, "/payment_methods/"+paymentMethodID+"/detach", url.Values{}, "", &out)
}

func (g *StripeGateway) do(ctx context.Context, method, path string, form url.Values, idempotencyKey string, out any) error {
	var body io.Reader
	if form != nil && method != http.MethodGet {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var se stripeError
		if err := json.Unmarshal(raw, &se); err == nil && se.Err.Message != "" {
			return fmt.Errorf("stripe %s %s: %s (%s)", method, path, se.Err.Message, se.Err.Code)
		}
		return fmt.Errorf("stripe %s %s: status %d", method, path, resp.StatusCode)
	}
	return json.Unmarshal(raw, out)
}

func fromStripeIntent(in stripeIntent) interfaces.PaymentIntent {
	return interfaces.PaymentIntent{
		ID:           in.ID,
		ClientSecret: in.ClientSecret,
		Status:       in.Status,
		AmountCents:  in.Amount,
		Currency:     in.Currency,
	}
}

package payment

import (
	"fmt"

	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeService creates Stripe Checkout sessions for room bookings.
type StripeService struct {
	successURL string
	cancelURL  string
}

// NewStripeService sets the global Stripe API key and returns the service.
// baseURL is where Stripe redirects the client after checkout.
func NewStripeService(apiKey, baseURL string) *StripeService {
	stripe.Key = apiKey
	return &StripeService{
		successURL: baseURL + "/bookings/confirmation?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  baseURL + "/bookings/failed?session_id={CHECKOUT_SESSION_ID}",
	}
}

var _ usecasecontract.IPaymentService = (*StripeService)(nil)

// CreateCheckoutSession creates a hosted checkout session and returns its URL and id.
func (s *StripeService) CreateCheckoutSession(amount int64, currency, description, customerEmail string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(s.successURL),
		CancelURL:     stripe.String(s.cancelURL),
		CustomerEmail: stripe.String(customerEmail),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, sess.ID, nil
}

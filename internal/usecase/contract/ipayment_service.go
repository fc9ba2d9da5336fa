package usecasecontract

// IPaymentService creates payment-provider checkout sessions for bookings.
type IPaymentService interface {
	// CreateCheckoutSession returns the hosted checkout URL and the provider
	// session id. Amount is in the currency's smallest unit.
	CreateCheckoutSession(amount int64, currency, description, customerEmail string) (string, string, error)
}

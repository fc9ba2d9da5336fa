package usecasecontract

import "time"

// IConfigProvider exposes process-lifetime configuration injected at startup.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetStripeClientID() string
}

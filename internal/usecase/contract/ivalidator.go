package usecasecontract

// IValidator validates user-supplied values beyond struct binding tags.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}

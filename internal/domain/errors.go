package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnauthenticatedErr is returned when an operation runs without a user identity.
type UnauthenticatedErr struct {
	domainErr
}

// NewUnauthenticatedErr creates a new UnauthenticatedErr with the given message.
func NewUnauthenticatedErr(message string) *UnauthenticatedErr {
	return &UnauthenticatedErr{
		domainErr: domainErr{message: message},
	}
}

// ForbiddenErr is returned when the identity does not match the requested owner.
type ForbiddenErr struct {
	domainErr
}

// NewForbiddenErr creates a new ForbiddenErr with the given message.
func NewForbiddenErr(message string) *ForbiddenErr {
	return &ForbiddenErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderErr wraps a failure reported by the embedding or completion provider.
type ProviderErr struct {
	domainErr
	cause error
}

// NewProviderErr creates a new ProviderErr with the given message and cause.
func NewProviderErr(message string, cause error) *ProviderErr {
	return &ProviderErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying provider failure.
func (e *ProviderErr) Unwrap() error {
	return e.cause
}

// ProviderNotConfiguredErr is returned before any provider call when no API key is configured.
type ProviderNotConfiguredErr struct {
	domainErr
}

// NewProviderNotConfiguredErr creates a new ProviderNotConfiguredErr.
func NewProviderNotConfiguredErr() *ProviderNotConfiguredErr {
	return &ProviderNotConfiguredErr{
		domainErr: domainErr{message: "provider API key not configured"},
	}
}

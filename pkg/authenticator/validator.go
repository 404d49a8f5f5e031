package authenticator

import "context"

// Validator defines the contract for a one-time code validator.
// The implementation should return nil on success or an error on failure.
type Validator interface {
	Authenticate(ctx context.Context, code string) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, code string) error

// Authenticate executes the underlying function.
func (f ValidatorFunc) Authenticate(ctx context.Context, code string) error {
	return f(ctx, code)
}

// Ensure the concrete authenticator satisfies the Validator interface.
var _ Validator = (*Authenticator)(nil)

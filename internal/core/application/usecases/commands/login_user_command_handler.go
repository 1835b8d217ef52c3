package commands

import (
	"context"
	"errors"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// LoginUserCommandHandler verifies credentials and issues a bearer token.
// Unknown email and wrong password produce the same unauthenticated error so
// the response does not reveal which accounts exist.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

// NewLoginUserCommandHandler creates a handler for credential verification.
// Requires a UserUoWFactory for the account lookup, a PasswordHasher for
// digest comparison and a TokenService for issuing access tokens.
func NewLoginUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the login command and returns a signed access token.
// The lookup is read-only, so the transaction is always rolled back.
func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", errs.NewUnauthenticatedErrorWithCause(err)
		}
		return "", err
	}

	if !h.hasher.Verify(cmd.Password(), account.PasswordHash()) {
		return "", errs.NewUnauthenticatedError()
	}

	return h.tokens.Issue(account.ID())
}

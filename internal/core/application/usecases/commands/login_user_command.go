package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrLoginUserCommandIsNotConstructed = errors.New(
		"LoginUserCommand must be created via NewLoginUserCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// LoginUserCommand represents a request to exchange credentials for a bearer
// token. No minimum password length applies here; whatever the caller sent is
// compared against the stored digest.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a command to authenticate a user.
// Validates that the email was constructed via kernel.NewEmail and the
// password is not empty.
func NewLoginUserCommand(email kernel.Email, password string) (LoginUserCommand, error) {
	command := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginUserCommandIsNotConstructed if validation fails.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the email address to authenticate.
func (c LoginUserCommand) Email() kernel.Email {
	return c.email
}

// Password returns the plaintext password to verify.
func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

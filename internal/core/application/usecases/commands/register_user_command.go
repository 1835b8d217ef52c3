package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 6

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

// RegisterUserCommand represents a request to create a new user account.
// Carries the display name, a validated email address and the plaintext
// password. The password is hashed by the handler; it never reaches the
// domain layer or storage in plaintext.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that the name is not empty, the email was constructed via
// kernel.NewEmail and the password meets the minimum length.
func NewRegisterUserCommand(name string, email kernel.Email, password string) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the user's email address.
func (c RegisterUserCommand) Email() kernel.Email {
	return c.email
}

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

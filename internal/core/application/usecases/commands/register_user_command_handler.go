package commands

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for account creation.
// Hashes the password, enforces email uniqueness and persists the new user.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory, hasher, time.Now)
//	cmd, _ := NewRegisterUserCommand("Alice", email, "s3cret")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
//	fmt.Printf("User %s registered", created.ID())
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      Clock
}

// NewRegisterUserCommandHandler creates a handler for user registration.
// Requires a UserUoWFactory for transactional persistence, a PasswordHasher
// for credential digests and a Clock for the creation timestamp.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	clock Clock,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

// Handle processes the registration command and returns the created user.
// Fails with a conflict error when the email address is already registered.
// The uniqueness pre-check races with concurrent registrations; the unique
// index on the email column is the authoritative guard, and the repository
// reports its violation as the same conflict error.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return nil, errs.NewConflictError("email", cmd.Email())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), passwordHash, h.clock())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}

package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	email := mustEmail(t, "alice@example.com")
	cmd, _ := commands.NewLoginUserCommand(email, "s3cret1")

	userID := kernel.NewUUID()
	account, err := user.NewUser(userID, "Alice", email, "$digest", handlerNow)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenService)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).Return(account, nil).Once(),
		hasher.On("Verify", "s3cret1", "$digest").Return(true).Once(),
		tokens.On("Issue", userID).Return("signed-token", nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginUserCommandHandler(factory, hasher, tokens)
	token, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLoginUserCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	email := mustEmail(t, "ghost@example.com")
	cmd, _ := commands.NewLoginUserCommand(email, "s3cret1")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).
			Return(nil, errs.NewObjectNotFoundError("user", email)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginUserCommandHandler(factory, new(MockPasswordHasher), new(MockTokenService))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	assert.Equal(t, errs.ErrUnauthenticated.Error(), err.Error(), "must not reveal whether the account exists")
}

func TestLoginUserCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	email := mustEmail(t, "alice@example.com")
	cmd, _ := commands.NewLoginUserCommand(email, "wrong-pass")

	account, err := user.NewUser(kernel.NewUUID(), "Alice", email, "$digest", handlerNow)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	hasher := new(MockPasswordHasher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, email).Return(account, nil).Once(),
		hasher.On("Verify", "wrong-pass", "$digest").Return(false).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginUserCommandHandler(factory, hasher, new(MockTokenService))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestLoginUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LoginUserCommand{} // not constructed properly
	h := commands.NewLoginUserCommandHandler(
		new(MockUserUoWFactory), new(MockPasswordHasher), new(MockTokenService),
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestLoginUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLoginUserCommand(mustEmail(t, "alice@example.com"), "s3cret1")

	uow := new(MockUserUoW)
	factory := new(MockUserUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewLoginUserCommandHandler(factory, new(MockPasswordHasher), new(MockTokenService))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCommand struct {
	invalid bool
}

func (c testCommand) Validate() error {
	if c.invalid {
		return errors.New("bad command")
	}
	return nil
}

func TestCommandBus_Dispatch(t *testing.T) {
	b := NewCommandBus()
	var handled bool

	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	})))

	err := b.Send(context.Background(), testCommand{})

	require.NoError(t, err)
	assert.True(t, handled)
}

func TestCommandBus_ValidationBeforeDispatch(t *testing.T) {
	b := NewCommandBus()
	var handled bool

	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	})))

	err := b.Send(context.Background(), testCommand{invalid: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command validation failed")
	assert.False(t, handled)
}

func TestCommandBus_UnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), testCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestCommandBus_DuplicateRegistration(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, handler))
	assert.Error(t, b.Register(testCommand{}, handler))
}

func TestCommandBus_HandlerErrorWrapped(t *testing.T) {
	b := NewCommandBus()
	sentinel := errors.New("boom")

	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return sentinel
	})))

	err := b.Send(context.Background(), testCommand{})

	assert.True(t, errors.Is(err, sentinel))
}

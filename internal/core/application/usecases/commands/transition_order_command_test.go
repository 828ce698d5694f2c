package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	operator := newTestUser(t, user.Operator)

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Approved, operator, "looks good")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Approved, cmd.Target())
	assert.Equal(t, operator, cmd.Actor())
	assert.Equal(t, "looks good", cmd.Note())
}

func TestNewTransitionOrderCommand_InvalidTarget(t *testing.T) {
	operator := newTestUser(t, user.Operator)
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Unknown, operator, "")
	require.Error(t, err)
}

func TestNewTransitionOrderCommand_RejectionWithoutReason(t *testing.T) {
	admin := newTestUser(t, user.Administrator)
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Rejected, admin, "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRejectionReasonIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewTransitionOrderCommand_RejectionWithReason(t *testing.T) {
	admin := newTestUser(t, user.Administrator)
	cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Rejected, admin, "fabric discontinued")
	require.NoError(t, err)
	assert.Equal(t, "fabric discontinued", cmd.Note())
}

func TestNewTransitionOrderCommand_NotConstructedActor(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Approved, user.User{}, "")
	require.Error(t, err)
}

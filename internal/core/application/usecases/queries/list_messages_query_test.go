package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListMessagesQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := newQueryUser(t, user.Factory)

	query, err := queries.NewListMessagesQuery(orderID, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actor, query.Actor())
}

func TestNewListMessagesQuery_InvalidOrderID(t *testing.T) {
	actor := newQueryUser(t, user.Factory)
	_, err := queries.NewListMessagesQuery(kernel.UUID{}, actor)
	require.Error(t, err)
}

func TestListMessagesQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.ListMessagesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListMessagesQueryIsNotConstructed)
}

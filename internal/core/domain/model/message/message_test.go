package message_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/message"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("creates message with role snapshot", func(t *testing.T) {
		author := kernel.NewUUID()
		at := time.Now()

		m, err := message.NewMessage(
			kernel.NewUUID(), kernel.NewUUID(), author, user.Customer, "Quando chega?", at,
		)

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.True(t, m.AuthorID().IsEqual(author))
		assert.Equal(t, user.Customer, m.AuthorRole())
		assert.Equal(t, "CLIENTE", m.AuthorRole().String())
		assert.Equal(t, "Quando chega?", m.Body())
		assert.Equal(t, at, m.At())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		m, err := message.NewMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.Operator,
			"  enviado hoje \n", time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, "enviado hoje", m.Body())
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := message.NewMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.Customer, "", time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects whitespace-only body", func(t *testing.T) {
		_, err := message.NewMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.Customer, "   \t\n ", time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid author role", func(t *testing.T) {
		_, err := message.NewMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.UnknownRole, "ola", time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := message.NewMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.Customer, "ola", time.Time{},
		)

		require.Error(t, err)
	})
}

func TestRestoreMessage(t *testing.T) {
	t.Run("restores persisted message as-is", func(t *testing.T) {
		m, err := message.RestoreMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.Factory,
			"medidas confirmadas", time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, user.Factory, m.AuthorRole())
		assert.Equal(t, "medidas confirmadas", m.Body())
	})

	t.Run("rejects empty persisted body", func(t *testing.T) {
		_, err := message.RestoreMessage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), user.Factory, "", time.Now(),
		)

		require.Error(t, err)
	})
}

func TestMessage_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m message.Message

		assert.Equal(t, message.ErrMessageIsNotConstructed, m.Validate())
	})
}

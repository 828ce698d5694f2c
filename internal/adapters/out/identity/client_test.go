package identity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/adapters/out/identity"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Resolve_ReturnsUser(t *testing.T) {
	id := kernel.NewUUID()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    id.String(),
			"email": "ana@example.com",
			"role":  "CLIENTE",
		})
	}))
	defer server.Close()

	client := identity.NewClient(server.URL)
	resolved, err := client.Resolve(t.Context(), "token-123")
	require.NoError(t, err)
	assert.Equal(t, id, resolved.ID())
	assert.Equal(t, "ana@example.com", resolved.Email())
	assert.Equal(t, user.Customer, resolved.Role())
}

func TestClient_Resolve_UnknownToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := identity.NewClient(server.URL)
	_, err := client.Resolve(t.Context(), "expired")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestClient_Resolve_UnknownRoleRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    kernel.NewUUID().String(),
			"email": "x@example.com",
			"role":  "SUPERUSER",
		})
	}))
	defer server.Close()

	client := identity.NewClient(server.URL)
	_, err := client.Resolve(t.Context(), "token")
	require.Error(t, err)
}

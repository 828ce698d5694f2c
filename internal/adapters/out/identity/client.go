// Package identity resolves session tokens against the identity service.
// The storefront never trusts role claims sent by clients; every call
// re-resolves the token into the user record the identity service holds.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
)

// Client is an HTTP identity resolver backed by the identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an identity client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type meResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Resolve returns the user behind a session token.
// Unknown or expired tokens come back as *errs.UnauthorizedError.
func (c *Client) Resolve(ctx context.Context, token string) (user.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return user.User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.User{}, errs.NewUnauthorizedError("resolve session token")
	}
	if resp.StatusCode != http.StatusOK {
		return user.User{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var me meResponse
	if err = json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return user.User{}, err
	}

	id, err := kernel.UUIDFromString(me.ID)
	if err != nil {
		return user.User{}, err
	}

	role, err := user.RoleFromString(me.Role)
	if err != nil {
		return user.User{}, err
	}

	return user.NewUser(id, me.Email, role)
}

package gateway

import (
	"context"
	"net/http"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

const authPath = "/api/Auth"

// AuthAPI talks to the gateway's session lifecycle. Sessions live entirely
// on the gateway side; this client only relays cookies.
type AuthAPI struct {
	c *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string `json:"username"`
}

// Login authenticates against the gateway and captures the Set-Cookie
// headers so the caller can relay them to the browser.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	resp, err := a.c.roundTrip(ctx, http.MethodPost, authPath+"/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return nil, domain.ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.GatewayError{Kind: domain.KindUnexpected, Status: resp.StatusCode}
	}

	result := &ports.LoginResult{SetCookies: resp.Header.Values("Set-Cookie")}

	var body loginResponse
	if err := decodeJSON(resp, &body); err == nil {
		result.Username = body.Username
	}
	return result, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, authPath+"/logout", nil, nil, nil)
}

type checkAuthResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// CheckAuth probes the gateway with the ambient session cookies.
func (a *AuthAPI) CheckAuth(ctx context.Context) (bool, error) {
	var out checkAuthResponse
	if err := a.c.do(ctx, http.MethodGet, authPath+"/check-auth", nil, nil, &out); err != nil {
		return false, err
	}
	return out.IsAuthenticated, nil
}

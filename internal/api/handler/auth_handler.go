package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/core/ports"
	"github.com/hoteldomar/reservation-admin/internal/infrastructure/gateway"
)

// AuthHandler proxies the session lifecycle to the gateway. The session
// itself lives on the gateway; this service only relays cookies.
type AuthHandler struct {
	auth ports.AuthGateway
}

func NewAuthHandler(auth ports.AuthGateway) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Username string `json:"username,omitempty"`
	Message  string `json:"message"`
}

// Login handles POST /v1/auth/login — authenticates against the gateway and
// relays its Set-Cookie headers to the browser.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	for _, sc := range result.SetCookies {
		c.Response().Header().Add("Set-Cookie", sc)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Username: result.Username,
		Message:  "Login realizado com sucesso!",
	})
}

// Logout handles POST /v1/auth/logout.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := gateway.WithSessionCookies(c.Request().Context(), c.Request().Header.Get("Cookie"))
	if err := h.auth.Logout(ctx); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sessão encerrada."})
}

type checkAuthResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Check handles GET /v1/auth/check — probes the gateway with the browser's
// cookies. Never fails hard: an unreachable gateway reads as unauthenticated.
//
// @Summary      Check the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  checkAuthResponse
// @Router       /v1/auth/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	ctx := gateway.WithSessionCookies(c.Request().Context(), c.Request().Header.Get("Cookie"))
	ok, err := h.auth.CheckAuth(ctx)
	if err != nil {
		ok = false
	}
	return c.JSON(http.StatusOK, checkAuthResponse{IsAuthenticated: ok})
}

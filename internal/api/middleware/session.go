package middleware

import (
	"fmt"
	"hash/fnv"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/core/ports"
	"github.com/hoteldomar/reservation-admin/internal/infrastructure/gateway"
)

// Session is the reusable "requires active session" guard. It forwards the
// browser's cookies to the gateway's check-auth probe and rejects the
// request before any handler runs when the session is not active. The
// cookies stay on the request context so every downstream gateway call
// carries them.
func Session(auth ports.AuthGateway) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookieHeader := c.Request().Header.Get("Cookie")
			if cookieHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "sessão não encontrada")
			}

			ctx := gateway.WithSessionCookies(c.Request().Context(), cookieHeader)

			ok, err := auth.CheckAuth(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "não foi possível validar a sessão")
			}
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "sessão expirada ou inválida")
			}

			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("session_id", sessionID(cookieHeader))

			return next(c)
		}
	}
}

// sessionID derives a stable opaque identifier from the cookie header; it
// keys the per-session submit lock without storing the cookie value itself.
func sessionID(cookieHeader string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cookieHeader))
	return fmt.Sprintf("%08x", h.Sum32())
}

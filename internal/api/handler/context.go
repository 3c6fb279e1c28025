package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ctxSessionID extracts the session identifier injected by the Session
// middleware. It keys the per-session submit lock; an empty value only
// occurs on unguarded routes, which never submit.
func ctxSessionID(c echo.Context) string {
	id, _ := c.Get("session_id").(string)
	return id
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

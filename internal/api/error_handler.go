package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hoteldomar/reservation-admin/internal/api/metrics"
	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Surfaces gateway validation rejections verbatim as 400s.
//   - Maps the other gateway error kinds and the domain sentinels to
//     deterministic statuses with fixed user-facing messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Failed gateway calls carry their kind; validation rejections are the
	// only ones whose body reaches the user, and they reach it verbatim.
	if ge, ok := domain.AsGatewayError(err); ok {
		metrics.GatewayErrorsTotal.WithLabelValues(ge.Kind.String()).Inc()
		switch ge.Kind {
		case domain.KindValidation:
			return http.StatusBadRequest, ge.Message
		case domain.KindTransport:
			log.Error().Err(err).Str("path", c.Path()).Msg("gateway unreachable")
			return http.StatusBadGateway, "Erro de comunicação com o serviço de dados. Tente novamente."
		default:
			if ge.Status == http.StatusNotFound {
				return http.StatusNotFound, "Registro não encontrado."
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("unexpected gateway status")
			return http.StatusBadGateway, "Erro inesperado do serviço de dados. Tente novamente."
		}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, "Já existe um envio em andamento. Aguarde a conclusão."
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, "Confirmação necessária para excluir a reserva."
	case errors.Is(err, domain.ErrConfirmationInvalid):
		return http.StatusConflict, "Confirmação inválida ou expirada."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "E-mail ou senha inválidos."
	case errors.Is(err, domain.ErrReservationNotLoaded):
		return http.StatusConflict, "Lista de reservas não carregada."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erro interno do servidor."
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/api/metrics"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// confirmTokenHeader carries the delete-confirmation token issued by the
// confirmation endpoint.
const confirmTokenHeader = "X-Confirm-Token"

// ReservationHandler handles HTTP requests for the reservation lifecycle.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List handles GET /v1/reservas — the full denormalized collection.
//
// @Summary      List all reservations with embedded cliente and room
// @Tags         reservas
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/reservas [get]
func (h *ReservationHandler) List(c echo.Context) error {
	rows, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET /v1/reservas/:id — the edit form's load: the record, the
// bound client's name and the full room list (unfiltered, so the currently
// occupied room stays selectable).
//
// @Summary      Load one reservation for editing
// @Tags         reservas
// @Produce      json
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  editContextResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservas/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ec, err := h.service.LoadForEdit(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, editContextResponse{
		Reservation: ec.Reservation,
		ClienteNome: ec.ClienteNome,
		Rooms:       ec.Rooms,
	})
}

// Create handles POST /v1/reservas.
//
// @Summary      Create a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        body  body      reservationRequest  true  "Reservation draft"
// @Success      201   {object}  submitResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/reservas [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ctxSessionID(c), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ReservationsSubmittedTotal.WithLabelValues("create").Inc()

	return c.JSON(http.StatusCreated, submitResponse{
		Message:     "Reserva cadastrada com sucesso!",
		Reservation: result.Reservation,
		Draft:       result.Draft,
	})
}

// Update handles PUT /v1/reservas/:id — a full-record replacement, status
// transition included. The returned draft stays populated.
//
// @Summary      Update a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Reservation id"
// @Param        body  body      reservationRequest  true  "Full reservation record"
// @Success      200   {object}  submitResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/reservas/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Update(c.Request().Context(), ctxSessionID(c), id, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ReservationsSubmittedTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, submitResponse{
		Message:     "Reserva atualizada com sucesso!",
		Reservation: result.Reservation,
		Draft:       result.Draft,
	})
}

// RequestDelete handles POST /v1/reservas/:id/confirmacao — opens the
// confirmation gate. No gateway delete fires here; an unused token expires
// on its own, which is the cancel path.
//
// @Summary      Request a delete confirmation token
// @Tags         reservas
// @Produce      json
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  confirmResponse
// @Router       /v1/reservas/{id}/confirmacao [post]
func (h *ReservationHandler) RequestDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	token, err := h.service.RequestDelete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, confirmResponse{
		ConfirmToken: token,
		Message:      "Tem certeza que deseja excluir a reserva?",
	})
}

// Delete handles DELETE /v1/reservas/:id — requires the confirmation token
// from RequestDelete in the X-Confirm-Token header.
//
// @Summary      Delete a reservation (confirmed)
// @Tags         reservas
// @Produce      json
// @Param        id               path      int     true  "Reservation id"
// @Param        X-Confirm-Token  header    string  true  "Confirmation token"
// @Success      200  {object}  messageResponse
// @Failure      409  {object}  errorResponse
// @Failure      428  {object}  errorResponse
// @Router       /v1/reservas/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	token := c.Request().Header.Get(confirmTokenHeader)
	if err := h.service.Delete(c.Request().Context(), id, token); err != nil {
		return err
	}

	metrics.ReservationsDeletedTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Reserva excluída com sucesso!"})
}

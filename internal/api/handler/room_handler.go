package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// RoomHandler handles the room CRUD proxy. The create form asks for
// ?disponiveis=true to get only unoccupied rooms; the edit form takes the
// unfiltered list.
type RoomHandler struct {
	rooms   ports.RoomGateway
	service ports.ReservationService
}

func NewRoomHandler(rooms ports.RoomGateway, service ports.ReservationService) *RoomHandler {
	return &RoomHandler{rooms: rooms, service: service}
}

// List handles GET /v1/quartos.
//
// @Summary      List rooms
// @Tags         quartos
// @Produce      json
// @Param        disponiveis  query     bool  false  "Only unoccupied rooms"
// @Success      200          {array}   domain.Room
// @Failure      502          {object}  errorResponse
// @Router       /v1/quartos [get]
func (h *RoomHandler) List(c echo.Context) error {
	if c.QueryParam("disponiveis") == "true" {
		rooms, err := h.service.AvailableRooms(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, rooms)
	}

	rooms, err := h.rooms.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /v1/quartos/:id.
//
// @Summary      Get one room
// @Tags         quartos
// @Produce      json
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorResponse
// @Router       /v1/quartos/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	room, err := h.rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Create handles POST /v1/quartos.
//
// @Summary      Register a room
// @Tags         quartos
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Room  true  "Room record (sans id)"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Router       /v1/quartos [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var room domain.Room
	if err := c.Bind(&room); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if room.RoomNumber == "" || room.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "roomNumber e type são obrigatórios")
	}
	if room.PricePerNight < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "pricePerNight não pode ser negativo")
	}

	created, err := h.rooms.Create(c.Request().Context(), &room)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/quartos/:id.
//
// @Summary      Update a room
// @Tags         quartos
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Room id"
// @Param        body  body      domain.Room  true  "Full room record"
// @Success      200   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Router       /v1/quartos/{id} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var room domain.Room
	if err := c.Bind(&room); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	updated, err := h.rooms.Update(c.Request().Context(), id, &room)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/quartos/:id.
//
// @Summary      Delete a room
// @Tags         quartos
// @Produce      json
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/quartos/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.rooms.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Quarto excluído com sucesso!"})
}

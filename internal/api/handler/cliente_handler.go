package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/api/metrics"
	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
	"github.com/hoteldomar/reservation-admin/internal/core/service"
)

// ClienteHandler handles guest lookups and the client CRUD proxy. The
// typeahead component applies the length gate; everything else passes
// straight through to the gateway.
type ClienteHandler struct {
	clientes  ports.ClienteGateway
	typeahead *service.Typeahead
}

func NewClienteHandler(clientes ports.ClienteGateway) *ClienteHandler {
	return &ClienteHandler{
		clientes:  clientes,
		typeahead: service.NewTypeahead(clientes),
	}
}

// Search handles GET /v1/clientes?nome= — the typeahead lookup. Input at or
// below the length threshold yields an empty set without touching the
// gateway.
//
// @Summary      Search clients by partial name
// @Tags         clientes
// @Produce      json
// @Param        nome  query     string  true  "Partial name (min 3 characters to trigger a lookup)"
// @Success      200   {array}   domain.ClienteSummary
// @Failure      502   {object}  errorResponse
// @Router       /v1/clientes [get]
func (h *ClienteHandler) Search(c echo.Context) error {
	nome := c.QueryParam("nome")

	candidates, err := h.typeahead.Lookup(c.Request().Context(), nome)
	if err != nil {
		return err
	}

	if candidates == nil {
		metrics.TypeaheadLookupsTotal.WithLabelValues("gated").Inc()
		return c.JSON(http.StatusOK, []domain.ClienteSummary{})
	}
	metrics.TypeaheadLookupsTotal.WithLabelValues("issued").Inc()
	return c.JSON(http.StatusOK, candidates)
}

// Get handles GET /v1/clientes/:id.
//
// @Summary      Get one client
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  domain.Cliente
// @Failure      404  {object}  errorResponse
// @Router       /v1/clientes/{id} [get]
func (h *ClienteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cl, err := h.clientes.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cl)
}

// Create handles POST /v1/clientes.
//
// @Summary      Register a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Cliente  true  "Client record (sans id)"
// @Success      201   {object}  domain.Cliente
// @Failure      400   {object}  errorResponse
// @Router       /v1/clientes [post]
func (h *ClienteHandler) Create(c echo.Context) error {
	var cl domain.Cliente
	if err := c.Bind(&cl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if cl.Nome == "" || cl.CPF == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "nome e cpf são obrigatórios")
	}

	created, err := h.clientes.Create(c.Request().Context(), &cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/clientes/:id.
//
// @Summary      Update a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Client id"
// @Param        body  body      domain.Cliente  true  "Full client record"
// @Success      200   {object}  domain.Cliente
// @Failure      400   {object}  errorResponse
// @Router       /v1/clientes/{id} [put]
func (h *ClienteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var cl domain.Cliente
	if err := c.Bind(&cl); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}

	updated, err := h.clientes.Update(c.Request().Context(), id, &cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/clientes/:id.
//
// @Summary      Delete a client
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.clientes.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Cliente excluído com sucesso!"})
}

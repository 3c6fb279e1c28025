package handler

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/api/metrics"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
	"github.com/hoteldomar/reservation-admin/internal/core/service"
)

// DocumentHandler serves the printable PDF exports. Rendering is purely
// local: the only network work is loading the list snapshot the export
// operates on.
type DocumentHandler struct {
	service ports.ReservationService
	docs    ports.DocumentGenerator
}

func NewDocumentHandler(svc ports.ReservationService, docs ports.DocumentGenerator) *DocumentHandler {
	return &DocumentHandler{service: svc, docs: docs}
}

// ExportOne handles GET /v1/reservas/:id/documento — the single-reservation
// guest voucher, filename derived from the client's name.
//
// @Summary      Download the guest voucher for one reservation
// @Tags         documentos
// @Produce      application/pdf
// @Param        id   path  int  true  "Reservation id"
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservas/{id}/documento [get]
func (h *DocumentHandler) ExportOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	list := service.NewReservationList(h.service, h.docs)
	if err := list.Load(c.Request().Context()); err != nil {
		return err
	}

	doc, err := list.ExportOne(id)
	if err != nil {
		return err
	}

	metrics.DocumentsGeneratedTotal.WithLabelValues("voucher").Inc()
	return download(c, doc)
}

// ExportAll handles GET /v1/reservas/documento — the consolidated report
// over the current collection, one row per reservation.
//
// @Summary      Download the consolidated reservation report
// @Tags         documentos
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      502  {object}  errorResponse
// @Router       /v1/reservas/documento [get]
func (h *DocumentHandler) ExportAll(c echo.Context) error {
	list := service.NewReservationList(h.service, h.docs)
	if err := list.Load(c.Request().Context()); err != nil {
		return err
	}

	doc, err := list.ExportAll()
	if err != nil {
		return err
	}

	metrics.DocumentsGeneratedTotal.WithLabelValues("report").Inc()
	return download(c, doc)
}

func download(c echo.Context, doc *ports.Document) error {
	// Filenames carry guest names; FormatMediaType quotes or RFC 2231-encodes
	// them so accents and quotes cannot break the header.
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, "application/pdf", doc.Content)
}

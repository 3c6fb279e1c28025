package handler

import (
	"mime"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

type stubDocGen struct {
	filename string
}

func (g *stubDocGen) Voucher(*domain.Reservation) (*ports.Document, error) {
	return &ports.Document{Filename: g.filename, Content: []byte("%PDF")}, nil
}

func (g *stubDocGen) Report([]domain.Reservation) (*ports.Document, error) {
	return &ports.Document{Filename: "reservas.pdf", Content: []byte("%PDF")}, nil
}

func TestDocumentHandler_ExportOne(t *testing.T) {
	h := NewDocumentHandler(&stubReservationService{}, &stubDocGen{filename: "reserva_Maria.pdf"})

	c, rec := newTestContext(t, http.MethodGet, "/v1/reservas/1/documento", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.ExportOne(c); err != nil {
		t.Fatalf("ExportOne: %v", err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("body is not the rendered document")
	}
}

// Guest names end up in the download filename; the header must stay parseable
// for names carrying quotes or accents.
func TestDocumentHandler_FilenameEscapedInHeader(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"accented name", "reserva_João da Silva.pdf"},
		{"embedded quote", `reserva_O"Brien.pdf`},
		{"plain ascii", "reserva_Maria.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewDocumentHandler(&stubReservationService{}, &stubDocGen{filename: tt.filename})

			c, rec := newTestContext(t, http.MethodGet, "/v1/reservas/1/documento", "")
			c.SetParamNames("id")
			c.SetParamValues("1")

			if err := h.ExportOne(c); err != nil {
				t.Fatalf("ExportOne: %v", err)
			}

			disposition := rec.Header().Get(echo.HeaderContentDisposition)
			mediaType, params, err := mime.ParseMediaType(disposition)
			if err != nil {
				t.Fatalf("unparseable Content-Disposition %q: %v", disposition, err)
			}
			if mediaType != "attachment" {
				t.Errorf("media type = %q", mediaType)
			}
			if params["filename"] != tt.filename {
				t.Errorf("filename round-tripped to %q, want %q", params["filename"], tt.filename)
			}
		})
	}
}

func TestDocumentHandler_ExportAll(t *testing.T) {
	h := NewDocumentHandler(&stubReservationService{}, &stubDocGen{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/reservas/documento", "")

	if err := h.ExportAll(c); err != nil {
		t.Fatalf("ExportAll: %v", err)
	}

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		t.Fatalf("unparseable Content-Disposition %q: %v", disposition, err)
	}
	if params["filename"] != "reservas.pdf" {
		t.Errorf("filename = %q", params["filename"])
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubReservationService struct {
	createResult *ports.SubmitResult
	createErr    error
	lastSession  string
	lastInput    ports.CreateReservationInput
	deleteErr    error
	deletedID    int
	deletedToken string
	token        string
}

func (s *stubReservationService) AvailableRooms(context.Context) ([]domain.Room, error) {
	return nil, nil
}

func (s *stubReservationService) LoadForEdit(_ context.Context, id int) (*ports.EditContext, error) {
	return &ports.EditContext{Reservation: &domain.Reservation{ID: id}}, nil
}

func (s *stubReservationService) Create(_ context.Context, sessionID string, input ports.CreateReservationInput) (*ports.SubmitResult, error) {
	s.lastSession = sessionID
	s.lastInput = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResult, nil
}

func (s *stubReservationService) Update(_ context.Context, sessionID string, id int, input ports.CreateReservationInput) (*ports.SubmitResult, error) {
	s.lastSession = sessionID
	s.lastInput = input
	r := &domain.Reservation{ID: id, Status: input.Status}
	return &ports.SubmitResult{Reservation: r, Draft: *r}, nil
}

func (s *stubReservationService) List(context.Context) ([]domain.Reservation, error) {
	return []domain.Reservation{{ID: 1}}, nil
}

func (s *stubReservationService) RequestDelete(_ context.Context, id int) (string, error) {
	return s.token, nil
}

func (s *stubReservationService) Delete(_ context.Context, id int, confirmToken string) error {
	s.deletedID = id
	s.deletedToken = confirmToken
	return s.deleteErr
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func validBody() string {
	return `{
		"clienteId": 7,
		"roomId": 3,
		"checkInDate": "2026-09-10",
		"checkOutDate": "2026-09-12",
		"status": "Ativa",
		"numeroDeAdultos": 2,
		"numeroDeCriancas0A5Anos": 0,
		"numeroDeCriancas": 1,
		"incluirCafeDaManha": true
	}`
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestReservationHandler_Create(t *testing.T) {
	svc := &stubReservationService{
		createResult: &ports.SubmitResult{
			Reservation: &domain.Reservation{ID: 12, ClienteID: 7, RoomID: 3},
			Draft:       domain.NewDraft(),
		},
	}
	h := NewReservationHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/reservas", validBody())
	c.Set("session_id", "sess-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp submitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Reserva cadastrada com sucesso!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Draft.NumeroDeAdultos != 1 || resp.Draft.ClienteID != 0 {
		t.Errorf("draft not reset: %+v", resp.Draft)
	}
	if svc.lastSession != "sess-1" {
		t.Errorf("session id = %q", svc.lastSession)
	}
	if svc.lastInput.NumeroDeCriancas != 1 || !svc.lastInput.IncluirCafeDaManha {
		t.Errorf("input not mapped: %+v", svc.lastInput)
	}
}

func TestReservationHandler_CreateRejectsBadPayload(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	tests := []struct {
		name string
		body string
	}{
		{"no client", `{"roomId":3,"checkInDate":"2026-09-10","checkOutDate":"2026-09-12","status":"Ativa","numeroDeAdultos":1}`},
		{"zero adults", `{"clienteId":7,"roomId":3,"checkInDate":"2026-09-10","checkOutDate":"2026-09-12","status":"Ativa","numeroDeAdultos":0}`},
		{"unknown status", `{"clienteId":7,"roomId":3,"checkInDate":"2026-09-10","checkOutDate":"2026-09-12","status":"Pendente","numeroDeAdultos":1}`},
		{"bad date", `{"clienteId":7,"roomId":3,"checkInDate":"10/09/2026","checkOutDate":"2026-09-12","status":"Ativa","numeroDeAdultos":1}`},
		{"negative children", `{"clienteId":7,"roomId":3,"checkInDate":"2026-09-10","checkOutDate":"2026-09-12","status":"Ativa","numeroDeAdultos":1,"numeroDeCriancas":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/v1/reservas", tt.body)

			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("err = %v, want 400", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestReservationHandler_Update(t *testing.T) {
	svc := &stubReservationService{}
	h := NewReservationHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/v1/reservas/5", validBody())
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp submitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Reserva atualizada com sucesso!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Draft.ID != 5 {
		t.Errorf("draft should stay populated after update: %+v", resp.Draft)
	}
}

// ---------------------------------------------------------------------------
// Delete confirmation flow
// ---------------------------------------------------------------------------

func TestReservationHandler_RequestDelete(t *testing.T) {
	svc := &stubReservationService{token: "tok-1"}
	h := NewReservationHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/reservas/4/confirmacao", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.RequestDelete(c); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}

	var resp confirmResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ConfirmToken != "tok-1" {
		t.Errorf("token = %q", resp.ConfirmToken)
	}
	if resp.Message != "Tem certeza que deseja excluir a reserva?" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestReservationHandler_DeletePassesTokenThrough(t *testing.T) {
	svc := &stubReservationService{}
	h := NewReservationHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/reservas/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	c.Request().Header.Set(confirmTokenHeader, "tok-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if svc.deletedID != 4 || svc.deletedToken != "tok-1" {
		t.Errorf("delete call = (%d, %q)", svc.deletedID, svc.deletedToken)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Reserva excluída com sucesso!" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestReservationHandler_DeleteWithoutTokenSurfacesSentinel(t *testing.T) {
	svc := &stubReservationService{deleteErr: domain.ErrConfirmationRequired}
	h := NewReservationHandler(svc)

	c, _ := newTestContext(t, http.MethodDelete, "/v1/reservas/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Delete(c); err != domain.ErrConfirmationRequired {
		t.Fatalf("err = %v, want ErrConfirmationRequired", err)
	}
	if svc.deletedToken != "" {
		t.Errorf("token = %q, want empty", svc.deletedToken)
	}
}

func TestReservationHandler_BadID(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/reservas/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

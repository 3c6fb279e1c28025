package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

type stubClienteGateway struct {
	searches []string
	searchFn func(nome string) ([]domain.ClienteSummary, error)
}

func (g *stubClienteGateway) SearchByName(_ context.Context, nome string) ([]domain.ClienteSummary, error) {
	g.searches = append(g.searches, nome)
	if g.searchFn != nil {
		return g.searchFn(nome)
	}
	return nil, nil
}

func (g *stubClienteGateway) GetByID(context.Context, int) (*domain.Cliente, error) {
	return nil, &domain.GatewayError{Kind: domain.KindUnexpected, Status: 404}
}

func (g *stubClienteGateway) Create(_ context.Context, cl *domain.Cliente) (*domain.Cliente, error) {
	return cl, nil
}

func (g *stubClienteGateway) Update(_ context.Context, _ int, cl *domain.Cliente) (*domain.Cliente, error) {
	return cl, nil
}

func (g *stubClienteGateway) Delete(context.Context, int) error { return nil }

func TestClienteHandler_SearchGatedBelowThreshold(t *testing.T) {
	gw := &stubClienteGateway{}
	h := NewClienteHandler(gw)

	c, rec := newTestContext(t, http.MethodGet, "/v1/clientes?nome=ab", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %s, want an empty set", rec.Body.String())
	}
	if len(gw.searches) != 0 {
		t.Errorf("gateway received %d lookups for gated input", len(gw.searches))
	}
}

// Each request must be answered with the candidates for its own query, even
// when another session's lookup completes in between on the same handler.
func TestClienteHandler_ConcurrentSessionsGetOwnCandidates(t *testing.T) {
	gw := &stubClienteGateway{}
	h := NewClienteHandler(gw)

	var otherBody string
	gw.searchFn = func(nome string) ([]domain.ClienteSummary, error) {
		if nome == "Carlos" {
			// Another session's lookup starts later and finishes first.
			gw.searchFn = func(string) ([]domain.ClienteSummary, error) {
				return []domain.ClienteSummary{{ID: 2, Nome: "Ana Beatriz"}}, nil
			}
			other, otherRec := newTestContext(t, http.MethodGet, "/v1/clientes?nome=Ana", "")
			if err := h.Search(other); err != nil {
				t.Fatalf("interleaved Search: %v", err)
			}
			otherBody = otherRec.Body.String()
			return []domain.ClienteSummary{{ID: 1, Nome: "Carlos Mendes"}}, nil
		}
		return nil, nil
	}

	c, rec := newTestContext(t, http.MethodGet, "/v1/clientes?nome=Carlos", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("Search: %v", err)
	}

	var got []domain.ClienteSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Nome != "Carlos Mendes" {
		t.Errorf("first session received %v, want its own Carlos candidates", got)
	}
	if !strings.Contains(otherBody, "Ana Beatriz") {
		t.Errorf("second session received %s, want its own Ana candidates", otherBody)
	}
}

func TestClienteHandler_CreateRequiresNomeAndCPF(t *testing.T) {
	h := NewClienteHandler(&stubClienteGateway{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/clientes", `{"nome":"Maria"}`)

	if err := h.Create(c); err == nil {
		t.Fatal("expected a rejection for a client without cpf")
	}
}

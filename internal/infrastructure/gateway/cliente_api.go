package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

const clientesPath = "/api/Clientes"

// ClienteAPI talks to the gateway's guest resource.
type ClienteAPI struct {
	c *Client
}

func NewClienteAPI(c *Client) *ClienteAPI {
	return &ClienteAPI{c: c}
}

// SearchByName performs the name-filtered lookup backing the typeahead.
func (a *ClienteAPI) SearchByName(ctx context.Context, nome string) ([]domain.ClienteSummary, error) {
	var out []domain.ClienteSummary
	q := url.Values{"nome": {nome}}
	if err := a.c.do(ctx, http.MethodGet, clientesPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ClienteAPI) GetByID(ctx context.Context, id int) (*domain.Cliente, error) {
	var out domain.Cliente
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", clientesPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClienteAPI) Create(ctx context.Context, cl *domain.Cliente) (*domain.Cliente, error) {
	var out domain.Cliente
	if err := a.c.do(ctx, http.MethodPost, clientesPath, nil, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClienteAPI) Update(ctx context.Context, id int, cl *domain.Cliente) (*domain.Cliente, error) {
	var out domain.Cliente
	if err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", clientesPath, id), nil, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClienteAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", clientesPath, id), nil, nil, nil)
}

package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

const reservationsPath = "/api/Reservations"

// ReservationAPI talks to the gateway's reservation resource. The list
// endpoint returns the denormalized form with cliente and room embedded;
// create and update send the flat record only.
type ReservationAPI struct {
	c *Client
}

func NewReservationAPI(c *Client) *ReservationAPI {
	return &ReservationAPI{c: c}
}

func (a *ReservationAPI) List(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := a.c.do(ctx, http.MethodGet, reservationsPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ReservationAPI) GetByID(ctx context.Context, id int) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", reservationsPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new reservation. The record carries no id and no embedded
// objects; TotalPrice is computed by the gateway and read back on fetch.
func (a *ReservationAPI) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := a.c.do(ctx, http.MethodPost, reservationsPath, nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the full record, status transition included.
func (a *ReservationAPI) Update(ctx context.Context, id int, r *domain.Reservation) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", reservationsPath, id), nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ReservationAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", reservationsPath, id), nil, nil, nil)
}

package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

const roomsPath = "/api/Rooms"

// RoomAPI talks to the gateway's room resource.
type RoomAPI struct {
	c *Client
}

func NewRoomAPI(c *Client) *RoomAPI {
	return &RoomAPI{c: c}
}

func (a *RoomAPI) List(ctx context.Context) ([]domain.Room, error) {
	var out []domain.Room
	if err := a.c.do(ctx, http.MethodGet, roomsPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *RoomAPI) GetByID(ctx context.Context, id int) (*domain.Room, error) {
	var out domain.Room
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", roomsPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *RoomAPI) Create(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	var out domain.Room
	if err := a.c.do(ctx, http.MethodPost, roomsPath, nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *RoomAPI) Update(ctx context.Context, id int, r *domain.Room) (*domain.Room, error) {
	var out domain.Room
	if err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", roomsPath, id), nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *RoomAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", roomsPath, id), nil, nil, nil)
}

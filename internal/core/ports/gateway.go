package ports

import (
	"context"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

// ClienteGateway is the remote guest resource. All persistence and business
// validation live on the other side of it.
type ClienteGateway interface {
	SearchByName(ctx context.Context, nome string) ([]domain.ClienteSummary, error)
	GetByID(ctx context.Context, id int) (*domain.Cliente, error)
	Create(ctx context.Context, c *domain.Cliente) (*domain.Cliente, error)
	Update(ctx context.Context, id int, c *domain.Cliente) (*domain.Cliente, error)
	Delete(ctx context.Context, id int) error
}

// RoomGateway is the remote room resource.
type RoomGateway interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int) (*domain.Room, error)
	Create(ctx context.Context, r *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, id int, r *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, id int) error
}

// ReservationGateway is the remote reservation resource. List returns the
// denormalized form (embedded cliente and room); Create and Update send the
// flat record only.
type ReservationGateway interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int) (*domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	Update(ctx context.Context, id int, r *domain.Reservation) (*domain.Reservation, error)
	Delete(ctx context.Context, id int) error
}

// AuthGateway is the remote session lifecycle. Credentials are the ambient
// session cookies carried on the context; nothing is stored locally.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context) error
	CheckAuth(ctx context.Context) (bool, error)
}

// LoginResult carries the gateway's login response plus the Set-Cookie
// headers to relay back to the browser.
type LoginResult struct {
	Username   string
	SetCookies []string
}

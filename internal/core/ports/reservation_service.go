package ports

import (
	"context"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
)

// CreateReservationInput carries a reservation draft ready for submission.
// Counts are typed ints on both the create and update paths; the transport
// layer performs any coercion before the service sees them.
type CreateReservationInput struct {
	ClienteID               int
	RoomID                  int
	CheckInDate             string
	CheckOutDate            string
	Status                  domain.ReservationStatus
	NumeroDeAdultos         int
	NumeroDeCriancas0A5Anos int
	NumeroDeCriancas        int
	IncluirCafeDaManha      bool
}

// SubmitResult reports the outcome of a create or update submission.
// After a successful create, Draft holds the reset defaults; after an
// update it holds the submitted record unchanged.
type SubmitResult struct {
	Reservation *domain.Reservation
	Draft       domain.Reservation
}

// EditContext is everything the edit form needs on load: the record itself,
// the bound client's display name, and the full (unfiltered) room list.
type EditContext struct {
	Reservation *domain.Reservation
	ClienteNome string
	Rooms       []domain.Room
}

// ReservationService defines the reservation lifecycle use cases.
type ReservationService interface {
	// AvailableRooms returns the rooms offered when composing a new
	// reservation (occupied rooms excluded).
	AvailableRooms(ctx context.Context) ([]domain.Room, error)
	// LoadForEdit fetches the reservation, its client's name and the full
	// room list for the edit form.
	LoadForEdit(ctx context.Context, id int) (*EditContext, error)
	Create(ctx context.Context, sessionID string, input CreateReservationInput) (*SubmitResult, error)
	Update(ctx context.Context, sessionID string, id int, input CreateReservationInput) (*SubmitResult, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	// RequestDelete issues a short-lived confirmation token for a delete.
	RequestDelete(ctx context.Context, id int) (string, error)
	// Delete consumes the confirmation token and performs the gateway delete.
	Delete(ctx context.Context, id int, confirmToken string) error
}

// SubmitLocker serializes submissions: at most one outstanding create/update
// per session at a time.
type SubmitLocker interface {
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

// DeleteConfirmer is the confirmation gate in front of destructive deletes.
// Issue hands out a token bound to one reservation; Consume validates and
// burns it. A token that is never consumed simply expires.
type DeleteConfirmer interface {
	Issue(ctx context.Context, reservationID int) (string, error)
	Consume(ctx context.Context, reservationID int, token string) (bool, error)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// ReservationService implements the reservation lifecycle: reference-data
// loads for the create and edit forms, submissions, listing and the
// confirmation-gated delete. The gateway owns all validation and pricing;
// this layer only orchestrates and serializes.
type ReservationService struct {
	reservas ports.ReservationGateway
	rooms    ports.RoomGateway
	clientes ports.ClienteGateway
	lock     ports.SubmitLocker
	confirm  ports.DeleteConfirmer
	logger   zerolog.Logger
}

func NewReservationService(
	reservas ports.ReservationGateway,
	rooms ports.RoomGateway,
	clientes ports.ClienteGateway,
	lock ports.SubmitLocker,
	confirm ports.DeleteConfirmer,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservas: reservas,
		rooms:    rooms,
		clientes: clientes,
		lock:     lock,
		confirm:  confirm,
		logger:   logger,
	}
}

// AvailableRooms returns the rooms offered when composing a new reservation.
// Occupied rooms are excluded here and only here; the edit path must keep
// the currently occupied room selectable.
func (s *ReservationService) AvailableRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.AvailableRooms(rooms), nil
}

// LoadForEdit fetches the reservation verbatim, the bound client's display
// name and the full room list. A failed name lookup is not fatal: the form
// still opens, just without the name pre-filled.
func (s *ReservationService) LoadForEdit(ctx context.Context, id int) (*ports.EditContext, error) {
	r, err := s.reservas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ec := &ports.EditContext{Reservation: r}

	if cl, err := s.clientes.GetByID(ctx, r.ClienteID); err == nil {
		ec.ClienteNome = cl.Nome
	} else {
		s.logger.Warn().Err(err).Int("cliente_id", r.ClienteID).Msg("cliente name lookup failed")
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	ec.Rooms = rooms

	return ec, nil
}

// Create submits a new reservation. On success the returned draft is reset
// to defaults. At most one submission per session is in flight at a time.
func (s *ReservationService) Create(ctx context.Context, sessionID string, input ports.CreateReservationInput) (*ports.SubmitResult, error) {
	release, err := s.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	created, err := s.reservas.Create(ctx, draftFromInput(input))
	if err != nil {
		s.logger.Error().Err(err).Int("cliente_id", input.ClienteID).Int("room_id", input.RoomID).Msg("reservation create failed")
		return nil, err
	}

	s.logger.Info().Int("reservation_id", created.ID).Int("cliente_id", created.ClienteID).Msg("reservation created")

	return &ports.SubmitResult{Reservation: created, Draft: domain.NewDraft()}, nil
}

// Update replaces the full record, id included. Unlike create, the draft is
// left populated after success.
func (s *ReservationService) Update(ctx context.Context, sessionID string, id int, input ports.CreateReservationInput) (*ports.SubmitResult, error) {
	release, err := s.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	record := draftFromInput(input)
	record.ID = id

	updated, err := s.reservas.Update(ctx, id, record)
	if err != nil {
		s.logger.Error().Err(err).Int("reservation_id", id).Msg("reservation update failed")
		return nil, err
	}

	s.logger.Info().Int("reservation_id", id).Str("status", string(updated.Status)).Msg("reservation updated")

	return &ports.SubmitResult{Reservation: updated, Draft: *updated}, nil
}

// List fetches the full denormalized collection.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservas.List(ctx)
}

// RequestDelete opens the confirmation gate. No gateway call happens here;
// an unconsumed token just expires.
func (s *ReservationService) RequestDelete(ctx context.Context, id int) (string, error) {
	return s.confirm.Issue(ctx, id)
}

// Delete consumes the confirmation token and only then calls the gateway.
func (s *ReservationService) Delete(ctx context.Context, id int, confirmToken string) error {
	if confirmToken == "" {
		return domain.ErrConfirmationRequired
	}

	ok, err := s.confirm.Consume(ctx, id, confirmToken)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrConfirmationInvalid
	}

	if err := s.reservas.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("reservation_id", id).Msg("reservation delete failed")
		return err
	}

	s.logger.Info().Int("reservation_id", id).Msg("reservation deleted")
	return nil
}

func (s *ReservationService) acquire(ctx context.Context, sessionID string) (func(), error) {
	ok, err := s.lock.Acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSubmissionInFlight
	}
	return func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), sessionID); err != nil {
			s.logger.Warn().Err(err).Msg("submit lock release failed")
		}
	}, nil
}

func draftFromInput(input ports.CreateReservationInput) *domain.Reservation {
	return &domain.Reservation{
		ClienteID:               input.ClienteID,
		RoomID:                  input.RoomID,
		CheckInDate:             input.CheckInDate,
		CheckOutDate:            input.CheckOutDate,
		Status:                  input.Status,
		NumeroDeAdultos:         input.NumeroDeAdultos,
		NumeroDeCriancas0A5Anos: input.NumeroDeCriancas0A5Anos,
		NumeroDeCriancas:        input.NumeroDeCriancas,
		IncluirCafeDaManha:      input.IncluirCafeDaManha,
	}
}

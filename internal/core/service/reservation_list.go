package service

import (
	"context"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// ReservationList is the list/detail view over the denormalized collection.
// It fetches once and then works on its in-memory snapshot: a successful
// delete removes exactly the matching row without a re-fetch, and a failed
// delete leaves the snapshot untouched.
type ReservationList struct {
	service ports.ReservationService
	docs    ports.DocumentGenerator
	rows    []domain.Reservation
	loaded  bool
}

func NewReservationList(service ports.ReservationService, docs ports.DocumentGenerator) *ReservationList {
	return &ReservationList{service: service, docs: docs}
}

// Load fetches the full collection and replaces the snapshot.
func (l *ReservationList) Load(ctx context.Context) error {
	rows, err := l.service.List(ctx)
	if err != nil {
		return err
	}
	l.rows = rows
	l.loaded = true
	return nil
}

// Rows returns the current snapshot.
func (l *ReservationList) Rows() []domain.Reservation {
	return l.rows
}

// Delete runs the confirmation-gated gateway delete and, only on success,
// drops the matching row from the snapshot.
func (l *ReservationList) Delete(ctx context.Context, id int, confirmToken string) error {
	if !l.loaded {
		return domain.ErrReservationNotLoaded
	}
	if err := l.service.Delete(ctx, id, confirmToken); err != nil {
		return err
	}
	for i := range l.rows {
		if l.rows[i].ID == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			break
		}
	}
	return nil
}

// ExportOne renders the voucher for one row of the snapshot. Purely local.
func (l *ReservationList) ExportOne(id int) (*ports.Document, error) {
	if !l.loaded {
		return nil, domain.ErrReservationNotLoaded
	}
	for i := range l.rows {
		if l.rows[i].ID == id {
			return l.docs.Voucher(&l.rows[i])
		}
	}
	return nil, &domain.GatewayError{Kind: domain.KindUnexpected, Status: 404, Message: "reserva não encontrada"}
}

// ExportAll renders the consolidated report over the whole snapshot.
func (l *ReservationList) ExportAll() (*ports.Document, error) {
	if !l.loaded {
		return nil, domain.ErrReservationNotLoaded
	}
	return l.docs.Report(l.rows)
}

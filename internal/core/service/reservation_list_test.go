package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

type stubDocs struct {
	vouchers int
	reports  int
	lastRows int
}

func (d *stubDocs) Voucher(r *domain.Reservation) (*ports.Document, error) {
	d.vouchers++
	return &ports.Document{Filename: "voucher.pdf", Content: []byte("%PDF")}, nil
}

func (d *stubDocs) Report(rows []domain.Reservation) (*ports.Document, error) {
	d.reports++
	d.lastRows = len(rows)
	return &ports.Document{Filename: "reservas.pdf", Content: []byte("%PDF")}, nil
}

func loadedList(t *testing.T, f *serviceFixture, docs *stubDocs) *ReservationList {
	t.Helper()
	l := NewReservationList(f.svc, docs)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return l
}

func TestReservationList_RequiresLoad(t *testing.T) {
	f := newServiceFixture()
	l := NewReservationList(f.svc, &stubDocs{})

	if _, err := l.ExportAll(); !errors.Is(err, domain.ErrReservationNotLoaded) {
		t.Errorf("ExportAll before Load: err = %v", err)
	}
	if _, err := l.ExportOne(1); !errors.Is(err, domain.ErrReservationNotLoaded) {
		t.Errorf("ExportOne before Load: err = %v", err)
	}
	if err := l.Delete(context.Background(), 1, "tok"); !errors.Is(err, domain.ErrReservationNotLoaded) {
		t.Errorf("Delete before Load: err = %v", err)
	}
}

func TestReservationList_DeleteRemovesExactlyOneRow(t *testing.T) {
	f := newServiceFixture()
	f.reservas.byID[1] = &domain.Reservation{ID: 1}
	f.reservas.byID[2] = &domain.Reservation{ID: 2}
	f.reservas.byID[3] = &domain.Reservation{ID: 3}

	l := loadedList(t, f, &stubDocs{})

	token, err := f.svc.RequestDelete(context.Background(), 2)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if err := l.Delete(context.Background(), 2, token); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	rows := l.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.ID == 2 {
			t.Error("deleted row still present in the snapshot")
		}
	}
}

func TestReservationList_FailedDeleteLeavesSnapshotUntouched(t *testing.T) {
	f := newServiceFixture()
	f.reservas.byID[1] = &domain.Reservation{ID: 1}
	f.reservas.byID[2] = &domain.Reservation{ID: 2}
	f.reservas.deleteErr = &domain.GatewayError{Kind: domain.KindTransport, Err: errors.New("timeout")}

	l := loadedList(t, f, &stubDocs{})

	token, _ := f.svc.RequestDelete(context.Background(), 2)
	if err := l.Delete(context.Background(), 2, token); err == nil {
		t.Fatal("expected the gateway failure to surface")
	}

	if len(l.Rows()) != 2 {
		t.Errorf("rows = %d, want the snapshot unchanged", len(l.Rows()))
	}
}

func TestReservationList_ExportOne(t *testing.T) {
	f := newServiceFixture()
	f.reservas.byID[1] = &domain.Reservation{ID: 1}
	docs := &stubDocs{}

	l := loadedList(t, f, docs)

	doc, err := l.ExportOne(1)
	if err != nil {
		t.Fatalf("ExportOne: %v", err)
	}
	if doc.Filename == "" || len(doc.Content) == 0 {
		t.Errorf("empty document: %+v", doc)
	}
	if docs.vouchers != 1 {
		t.Errorf("vouchers rendered = %d, want 1", docs.vouchers)
	}

	if _, err := l.ExportOne(99); err == nil {
		t.Error("expected an error for a row missing from the snapshot")
	}
}

func TestReservationList_ExportAllCoversWholeSnapshot(t *testing.T) {
	f := newServiceFixture()
	f.reservas.byID[1] = &domain.Reservation{ID: 1}
	f.reservas.byID[2] = &domain.Reservation{ID: 2}
	docs := &stubDocs{}

	l := loadedList(t, f, docs)

	if _, err := l.ExportAll(); err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if docs.reports != 1 || docs.lastRows != 2 {
		t.Errorf("reports = %d over %d rows, want 1 over 2", docs.reports, docs.lastRows)
	}
}

package ports

import "github.com/hoteldomar/reservation-admin/internal/core/domain"

// Document is a rendered printable artifact ready for download.
type Document struct {
	Filename string
	Content  []byte
}

// DocumentGenerator renders reservations into printable documents. Both
// methods are pure with respect to their input: no network, no clock.
type DocumentGenerator interface {
	// Voucher renders the single-reservation guest voucher.
	Voucher(r *domain.Reservation) (*Document, error)
	// Report renders the consolidated one-row-per-reservation table.
	Report(rs []domain.Reservation) (*Document, error)
}

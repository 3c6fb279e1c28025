package service

import (
	"context"
	"unicode/utf8"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// minSearchLen is the length gate: input this short is answered locally with
// an empty candidate set and never reaches the gateway.
const minSearchLen = 2

// Typeahead is the incremental client-name lookup behind the reservation
// form's search box. It holds no state: every call answers for exactly the
// input it was given, so concurrent sessions can never observe each other's
// candidates. The form state itself (search text, bound client id, which
// response is current) lives in the browser; a response that lost the race
// against a later keystroke is the browser's to discard.
type Typeahead struct {
	clientes ports.ClienteGateway
}

func NewTypeahead(clientes ports.ClienteGateway) *Typeahead {
	return &Typeahead{clientes: clientes}
}

// Lookup returns the candidate set for nome. Input at or below the length
// threshold yields (nil, nil) without a gateway call; past the gate the
// result is never nil, so nil reliably means "gated".
func (t *Typeahead) Lookup(ctx context.Context, nome string) ([]domain.ClienteSummary, error) {
	if utf8.RuneCountInString(nome) <= minSearchLen {
		return nil, nil
	}

	found, err := t.clientes.SearchByName(ctx, nome)
	if err != nil {
		return nil, err
	}
	if found == nil {
		found = []domain.ClienteSummary{}
	}
	return found, nil
}

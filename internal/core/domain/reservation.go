package domain

// ReservationStatus is the lifecycle state of a reservation as the remote
// gateway reports it. The values are the exact display strings used on the
// wire, accents included.
type ReservationStatus string

const (
	StatusAtiva     ReservationStatus = "Ativa"
	StatusConcluida ReservationStatus = "Concluída"
	StatusCancelada ReservationStatus = "Cancelada"
)

// ValidStatus reports whether s is one of the known reservation statuses.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusAtiva, StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

// Reservation mirrors the gateway's reservation resource. TotalPrice is
// computed and owned by the gateway; this service only displays it.
// Cliente and Room are populated on the denormalized list endpoint and
// nil everywhere else.
type Reservation struct {
	ID                      int               `json:"id,omitempty"`
	ClienteID               int               `json:"clienteId"`
	RoomID                  int               `json:"roomId"`
	CheckInDate             string            `json:"checkInDate"`
	CheckOutDate            string            `json:"checkOutDate"`
	Status                  ReservationStatus `json:"status"`
	NumeroDeAdultos         int               `json:"numeroDeAdultos"`
	NumeroDeCriancas0A5Anos int               `json:"numeroDeCriancas0A5Anos"`
	NumeroDeCriancas        int               `json:"numeroDeCriancas"`
	IncluirCafeDaManha      bool              `json:"incluirCafeDaManha"`
	TotalPrice              float64           `json:"totalPrice,omitempty"`

	Cliente *Cliente `json:"cliente,omitempty"`
	Room    *Room    `json:"room,omitempty"`
}

// NewDraft returns the initial state of a reservation being composed:
// one adult, no children, no breakfast, everything else unset.
func NewDraft() Reservation {
	return Reservation{NumeroDeAdultos: 1}
}

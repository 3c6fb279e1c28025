package domain

// RoomType is the category label of a room, drawn from the fixed set the
// gateway accepts.
type RoomType string

const (
	RoomSolteiro          RoomType = "Solteiro"
	RoomCasal             RoomType = "Casal"
	RoomSuite             RoomType = "Suíte"
	RoomDuplo             RoomType = "Duplo"
	RoomFamiliar          RoomType = "Familiar"
	RoomLuxo              RoomType = "Luxo"
	RoomTriplo            RoomType = "Triplo"
	RoomQuadruplo         RoomType = "Quádruplo"
	RoomSuiteCafeEspecial RoomType = "Suíte com Café da Manhã Especial"
	RoomSuiteCafeSimples  RoomType = "Suíte com Café da Manhã Simples"
	RoomSuitePernoite     RoomType = "Suíte Pernoite"
)

// Room mirrors the gateway's room resource. RoomNumber is a display label,
// not necessarily numeric.
type Room struct {
	ID            int      `json:"id,omitempty"`
	RoomNumber    string   `json:"roomNumber"`
	Type          RoomType `json:"type"`
	PricePerNight float64  `json:"pricePerNight"`
	IsOccupied    bool     `json:"isOccupied"`
}

// AvailableRooms filters rooms down to the ones offered when composing a new
// reservation. Editing an existing reservation uses the unfiltered list so
// the currently occupied room stays selectable.
func AvailableRooms(rooms []Room) []Room {
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if !r.IsOccupied {
			out = append(out, r)
		}
	}
	return out
}

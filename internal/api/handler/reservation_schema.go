package handler

import (
	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

// reservationRequest is the submission payload for both create and update.
// All count fields are typed ints on both paths; the breakfast flag is a
// real boolean, not a text token.
type reservationRequest struct {
	ClienteID               int    `json:"clienteId"               validate:"required,gt=0"`
	RoomID                  int    `json:"roomId"                  validate:"required,gt=0"`
	CheckInDate             string `json:"checkInDate"             validate:"required,datetime=2006-01-02"`
	CheckOutDate            string `json:"checkOutDate"            validate:"required,datetime=2006-01-02"`
	Status                  string `json:"status"                  validate:"required,oneof=Ativa Concluída Cancelada"`
	NumeroDeAdultos         int    `json:"numeroDeAdultos"         validate:"required,gte=1"`
	NumeroDeCriancas0A5Anos int    `json:"numeroDeCriancas0A5Anos" validate:"gte=0"`
	NumeroDeCriancas        int    `json:"numeroDeCriancas"        validate:"gte=0"`
	IncluirCafeDaManha      bool   `json:"incluirCafeDaManha"`
}

func toCreateInput(req reservationRequest) ports.CreateReservationInput {
	return ports.CreateReservationInput{
		ClienteID:               req.ClienteID,
		RoomID:                  req.RoomID,
		CheckInDate:             req.CheckInDate,
		CheckOutDate:            req.CheckOutDate,
		Status:                  domain.ReservationStatus(req.Status),
		NumeroDeAdultos:         req.NumeroDeAdultos,
		NumeroDeCriancas0A5Anos: req.NumeroDeCriancas0A5Anos,
		NumeroDeCriancas:        req.NumeroDeCriancas,
		IncluirCafeDaManha:      req.IncluirCafeDaManha,
	}
}

// submitResponse reports a successful submission: the banner message, the
// gateway-acknowledged record, and the draft the form should now hold
// (reset defaults after create, the record itself after update).
type submitResponse struct {
	Message     string              `json:"message"`
	Reservation *domain.Reservation `json:"reservation"`
	Draft       domain.Reservation  `json:"draft"`
}

// editContextResponse is the edit form's load payload.
type editContextResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	ClienteNome string              `json:"clienteNome"`
	Rooms       []domain.Room       `json:"rooms"`
}

// confirmResponse hands out the delete-confirmation token.
type confirmResponse struct {
	ConfirmToken string `json:"confirmToken"`
	Message      string `json:"message"`
}

// messageResponse is the plain success banner envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse documents the error envelope rendered by the central error
// handler; handlers never build it directly.
type errorResponse struct {
	Error string `json:"error"`
}

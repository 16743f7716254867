package response

import (
	"encoding/json"

	"evcontrol/internal/domain/reservation"
)

// ReservationResponse mirrors the backend payload; valorCobrado stays a number
type ReservationResponse struct {
	ID           *int64      `json:"id,omitempty"`
	NomeCliente  string      `json:"nomeCliente"`
	DataReserva  string      `json:"dataReserva"`
	ValorCobrado json.Number `json:"valorCobrado"`
	Observacoes  string      `json:"observacoes"`
	ValorBRL     string      `json:"valorFormatado"`
	DataBR       string      `json:"dataFormatada"`
}

func FromReservation(r reservation.Reservation) ReservationResponse {
	r = r.Clone()
	return ReservationResponse{
		ID:           r.ID,
		NomeCliente:  r.ClientName,
		DataReserva:  r.Date,
		ValorCobrado: json.Number(r.Amount.String()),
		Observacoes:  r.Notes,
		ValorBRL:     reservation.FormatBRL(r.Amount),
		DataBR:       reservation.FormatDateBR(r.Date),
	}
}

func FromReservations(list []reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(list))
	for i, r := range list {
		out[i] = FromReservation(r)
	}
	return out
}

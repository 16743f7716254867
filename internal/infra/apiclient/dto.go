package apiclient

import (
	"encoding/json"

	"evcontrol/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

// reservaBody is the backend's wire shape. Amounts travel as JSON numbers.
type reservaBody struct {
	ID           *int64      `json:"id,omitempty"`
	NomeCliente  string      `json:"nomeCliente"`
	DataReserva  string      `json:"dataReserva"`
	ValorCobrado json.Number `json:"valorCobrado"`
	Observacoes  string      `json:"observacoes"`
}

func toBody(r reservation.Reservation) reservaBody {
	return reservaBody{
		ID:           r.Clone().ID,
		NomeCliente:  r.ClientName,
		DataReserva:  r.Date,
		ValorCobrado: json.Number(r.Amount.String()),
		Observacoes:  r.Notes,
	}
}

func (b reservaBody) toDomain() (reservation.Reservation, error) {
	amount := decimal.Zero
	if b.ValorCobrado != "" {
		var err error
		amount, err = decimal.NewFromString(b.ValorCobrado.String())
		if err != nil {
			return reservation.Reservation{}, err
		}
	}
	return reservation.Reservation{
		ID:         b.ID,
		ClientName: b.NomeCliente,
		Date:       b.DataReserva,
		Amount:     amount,
		Notes:      b.Observacoes,
	}, nil
}

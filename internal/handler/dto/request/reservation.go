package request

// ReservationFormRequest is the create/edit dialog as posted by the page.
// Field names follow the backend payload so the JSON and form variants agree.
type ReservationFormRequest struct {
	ClientName string `form:"nomeCliente" json:"nomeCliente"`
	Date       string `form:"dataReserva" json:"dataReserva"`
	// raw text of the amount field, e.g. "R$ 1.250,00"
	Amount string `form:"valorCobrado" json:"valorCobrado"`
	Notes  string `form:"observacoes" json:"observacoes"`
}

type ReservationIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

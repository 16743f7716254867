//go:build unit || e2e

package builder

import (
	"evcontrol/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID         *int64
	ClientName string
	Date       string
	Amount     string
	Notes      string
}

func NewReservationBuilder() *ReservationBuilder {
	id := int64(1)
	return &ReservationBuilder{
		ID:         &id,
		ClientName: "Ana",
		Date:       "2024-05-10",
		Amount:     "150.00",
		Notes:      "",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = &id
	return b
}

func (b *ReservationBuilder) WithoutID() *ReservationBuilder {
	b.ID = nil
	return b
}

func (b *ReservationBuilder) WithClient(name string) *ReservationBuilder {
	b.ClientName = name
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithAmount(amount string) *ReservationBuilder {
	b.Amount = amount
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = notes
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() reservation.Reservation {
	r := reservation.Reservation{
		ClientName: b.ClientName,
		Date:       b.Date,
		Amount:     decimal.RequireFromString(b.Amount),
		Notes:      b.Notes,
	}
	if b.ID != nil {
		id := *b.ID
		r.ID = &id
	}
	return r
}

// BuildWire returns the backend JSON object of the reservation
func (b *ReservationBuilder) BuildWire() map[string]any {
	m := map[string]any{
		"nomeCliente":  b.ClientName,
		"dataReserva":  b.Date,
		"valorCobrado": decimal.RequireFromString(b.Amount).InexactFloat64(),
		"observacoes":  b.Notes,
	}
	if b.ID != nil {
		m["id"] = *b.ID
	}
	return m
}

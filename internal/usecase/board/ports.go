package board

import (
	"context"

	"evcontrol/internal/domain/reservation"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/board/mock_ports.go -package=boardmock

// ReservationAPI is the backend the board reads from and mutates. Every
// failure is expected to match errs.ErrRequestFailed.
type ReservationAPI interface {
	List(ctx context.Context) ([]reservation.Reservation, error)
	Create(ctx context.Context, r reservation.Reservation) (reservation.Reservation, error)
	Update(ctx context.Context, id int64, r reservation.Reservation) (reservation.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

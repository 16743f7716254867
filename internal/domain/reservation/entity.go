package reservation

import (
	"strings"

	"evcontrol/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// Reservation is a booking as the backend exposes it. ID is nil until the
// backend has persisted it.
type Reservation struct {
	ID         *int64
	ClientName string
	Date       string
	Amount     decimal.Decimal
	Notes      string
}

// NewDraft returns the defaults of the creation dialog. date may be empty.
func NewDraft(date string) Reservation {
	return Reservation{
		ClientName: "",
		Date:       date,
		Amount:     decimal.Zero,
		Notes:      "",
	}
}

func (r Reservation) IsPersisted() bool {
	return r.ID != nil
}

// IDValue returns 0 for drafts
func (r Reservation) IDValue() int64 {
	return patch.Coalesce(r.ID, 0)
}

func (r Reservation) OnDate(isoDate string) bool {
	return r.Date == isoDate
}

// MatchesName is the case-insensitive substring test of the search filter.
// query must already be trimmed and lower-cased.
func (r Reservation) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(r.ClientName), query)
}

// Clone copies the reservation so that the ID pointer is not shared
func (r Reservation) Clone() Reservation {
	if r.ID != nil {
		id := *r.ID
		r.ID = &id
	}
	return r
}

func CloneAll(list []Reservation) []Reservation {
	if list == nil {
		return nil
	}
	out := make([]Reservation, len(list))
	for i, r := range list {
		out[i] = r.Clone()
	}
	return out
}

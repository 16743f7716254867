package board

import (
	"strings"

	"evcontrol/internal/domain/reservation"
)

// Store holds the list last fetched from the backend (authoritative) and the
// subset currently shown (displayed).
type Store struct {
	authoritative []reservation.Reservation
	displayed     []reservation.Reservation
	query         string
}

// Replace installs a freshly fetched list. The filter is dropped but the
// query text is kept for the search box.
func (s *Store) Replace(list []reservation.Reservation) {
	s.authoritative = reservation.CloneAll(list)
	s.displayed = reservation.CloneAll(list)
}

func (s *Store) Search(query string) {
	s.query = query
	s.displayed = Filter(s.authoritative, query)
}

func (s *Store) ClearSearch() {
	s.query = ""
	s.displayed = reservation.CloneAll(s.authoritative)
}

func (s *Store) Query() string { return s.query }

func (s *Store) Displayed() []reservation.Reservation {
	return reservation.CloneAll(s.displayed)
}

func (s *Store) Authoritative() []reservation.Reservation {
	return reservation.CloneAll(s.authoritative)
}

func (s *Store) FindDisplayed(id int64) (reservation.Reservation, bool) {
	for _, r := range s.displayed {
		if r.ID != nil && *r.ID == id {
			return r.Clone(), true
		}
	}
	return reservation.Reservation{}, false
}

// Filter keeps, in order, the reservations whose client name contains query
// ignoring case. A blank query returns the whole list.
func Filter(list []reservation.Reservation, query string) []reservation.Reservation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return reservation.CloneAll(list)
	}

	filtered := make([]reservation.Reservation, 0, len(list))
	for _, r := range list {
		if r.MatchesName(q) {
			filtered = append(filtered, r.Clone())
		}
	}
	return filtered
}

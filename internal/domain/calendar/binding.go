package calendar

import (
	"time"

	"evcontrol/internal/domain/reservation"
)

// Tile classes used by the page stylesheet
const (
	ClassReserved = "dia-reservado"
	ClassNeighbor = "dia-vizinho"
	ClassFree     = "dia-livre"
)

type Day struct {
	Date           time.Time
	ISO            string
	Number         int
	InActiveMonth  bool
	HasReservation bool
	IsToday        bool
	// Label is the client name, set only for reserved days of the active month
	Label string
	Class string
}

type Grid struct {
	Month    Month
	Weekdays []string
	Weeks    [][]Day
}

// Lookup returns the first reservation on isoDate. The backend does not
// enforce one reservation per day, so later ones are ignored here.
func Lookup(list []reservation.Reservation, isoDate string) (reservation.Reservation, bool) {
	for _, r := range list {
		if r.OnDate(isoDate) {
			return r, true
		}
	}
	return reservation.Reservation{}, false
}

// Build lays out whole weeks covering month; days of the neighbouring months
// fill the first and last week.
func Build(month Month, weekStart time.Weekday, today time.Time, list []reservation.Reservation) Grid {
	byDate := make(map[string]reservation.Reservation, len(list))
	for _, r := range list {
		if _, seen := byDate[r.Date]; !seen {
			byDate[r.Date] = r
		}
	}

	first := month.First()
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDate(0, 0, -lead)
	last := month.Add(1).First().AddDate(0, 0, -1)
	trail := (int(weekStart) + 6 - int(last.Weekday()) + 7) % 7
	end := last.AddDate(0, 0, trail)

	todayISO := reservation.FormatDate(today)
	grid := Grid{Month: month, Weekdays: weekdayHeader(weekStart)}

	var week []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		week = append(week, bindDay(d, month, todayISO, byDate))
		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
		}
	}
	return grid
}

func bindDay(d time.Time, month Month, todayISO string, byDate map[string]reservation.Reservation) Day {
	iso := reservation.FormatDate(d)
	r, reserved := byDate[iso]
	day := Day{
		Date:           d,
		ISO:            iso,
		Number:         d.Day(),
		InActiveMonth:  month.Contains(d),
		HasReservation: reserved,
		IsToday:        iso == todayISO,
	}

	switch {
	case reserved && day.InActiveMonth:
		day.Class = ClassReserved
		day.Label = r.ClientName
	case !day.InActiveMonth:
		day.Class = ClassNeighbor
	default:
		day.Class = ClassFree
	}
	return day
}

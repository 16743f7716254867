package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidMonth = errors.New("month must be YYYY-MM")

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var weekdayNames = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// Month is the month shown by the calendar
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return MonthOf(t), nil
}

// First is noon UTC on day one, which keeps AddDate clear of DST edges
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 12, 0, 0, 0, time.UTC)
}

func (m Month) Add(months int) Month {
	return MonthOf(m.First().AddDate(0, months, 0))
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Title renders "maio de 2024"
func (m Month) Title() string {
	return monthNames[m.Month-1] + " de " + fmt.Sprint(m.Year)
}

func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "domingo":
		return time.Sunday, nil
	case "monday", "segunda":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("unsupported week start %q", s)
	}
}

// Today returns the civil date of now in loc as a calendar time
func Today(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, time.UTC)
}

func weekdayHeader(weekStart time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = weekdayNames[(int(weekStart)+i)%7]
	}
	return out
}

package board

import (
	"time"

	"evcontrol/internal/domain/calendar"
	"evcontrol/internal/domain/reservation"
)

// View is a consistent snapshot of a board, taken under its lock
type View struct {
	Month        calendar.Month
	Title        string
	Grid         calendar.Grid
	Query        string
	Reservations []reservation.Reservation
	Dialog       DialogView
	Notification *NotificationView
	Dark         bool
}

type DialogView struct {
	Kind     DialogKind
	Mode     FormMode
	Form     FormView
	Selected *reservation.Reservation
	ReturnTo DialogKind
}

// FormView is the form as rendered: the amount is text, empty for zero
type FormView struct {
	ID         *int64
	ClientName string
	Date       string
	AmountText string
	Notes      string
}

type NotificationView struct {
	Kind      NotificationKind
	Message   string
	Remaining time.Duration
}

func (n NotificationView) RemainingMillis() int64 {
	return n.Remaining.Milliseconds()
}

func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	displayed := b.store.Displayed()

	v := View{
		Month:        b.month,
		Title:        b.month.Title(),
		Grid:         calendar.Build(b.month, b.settings.WeekStart, calendar.Today(now, b.settings.Location), displayed),
		Query:        b.store.Query(),
		Reservations: displayed,
		Dialog:       b.dialogView(),
		Dark:         b.dark,
	}
	if n, ok := b.banner.Current(now); ok {
		v.Notification = &NotificationView{Kind: n.Kind, Message: n.Message, Remaining: n.Remaining(now)}
	}
	return v
}

func (b *Board) dialogView() DialogView {
	d := b.dialog
	dv := DialogView{Kind: d.kind, Mode: d.mode, ReturnTo: d.returnTo}
	if dv.Kind == "" {
		dv.Kind = DialogNone
	}

	switch d.kind {
	case DialogForm:
		dv.Form = FormView{
			ID:         d.form.Reservation().ID,
			ClientName: d.form.ClientName,
			Date:       d.form.Date,
			AmountText: reservation.FormatAmountInput(d.form.Amount),
			Notes:      d.form.Notes,
		}
	case DialogInfo, DialogConfirmDelete:
		sel := d.selected.Clone()
		dv.Selected = &sel
	}
	return dv
}

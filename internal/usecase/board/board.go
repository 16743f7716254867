package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"evcontrol/internal/domain/calendar"
	"evcontrol/internal/domain/reservation"
	"evcontrol/internal/pkg/clock"
	"evcontrol/internal/pkg/errs"
)

type Settings struct {
	Location             *time.Location
	WeekStart            time.Weekday
	NotificationDuration time.Duration
}

// FormInput is what the user typed into the create/edit dialog. AmountText
// is the raw text of the amount field.
type FormInput struct {
	ClientName string
	Date       string
	AmountText string
	Notes      string
}

// Board is the UI state of one browser session. Its methods are serialised,
// so one session sees its actions in the order they arrive.
type Board struct {
	mu sync.Mutex

	api      ReservationAPI
	clock    clock.Clock
	logger   *slog.Logger
	settings Settings

	store  Store
	dialog Dialog
	banner *Banner
	month  calendar.Month
	dark   bool
}

func NewBoard(api ReservationAPI, clk clock.Clock, logger *slog.Logger, settings Settings) *Board {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &Board{
		api:      api,
		clock:    clk,
		logger:   logger,
		settings: settings,
		dialog:   NoDialog(),
		banner:   NewBanner(settings.NotificationDuration),
		month:    calendar.MonthOf(calendar.Today(clk.Now(), settings.Location)),
	}
}

// Mount is the first fetch of a new session
func (b *Board) Mount(ctx context.Context) {
	b.Reload(ctx)
}

func (b *Board) Reload(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refresh(ctx)
}

func (b *Board) Search(query string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.Search(query)
}

func (b *Board) ClearSearch() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.ClearSearch()
}

func (b *Board) NavigateMonth(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.month = b.month.Add(delta)
}

func (b *Board) GoToMonth(m calendar.Month) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.month = m
}

func (b *Board) GoToToday() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.month = calendar.MonthOf(b.today())
}

func (b *Board) ToggleTheme() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dark = !b.dark
}

// ClickDay opens the info dialog of the first displayed reservation on
// isoDate, or the creation dialog pre-filled with isoDate.
func (b *Board) ClickDay(isoDate string) error {
	if isoDate == "" {
		return reservation.ErrInvalidDate
	}
	if err := reservation.ValidateDate(isoDate); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := calendar.Lookup(b.store.displayed, isoDate); ok {
		return b.transition(b.dialog.OpenInfo(existing))
	}
	return b.transition(b.dialog.OpenCreate(isoDate))
}

func (b *Board) OpenNew() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transition(b.dialog.OpenCreate(""))
}

func (b *Board) OpenEdit(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.store.FindDisplayed(id)
	if !ok {
		return errs.Wrapf(errs.ErrReservationNotFound, "reservation %d", id)
	}
	return b.transition(b.dialog.OpenEdit(r))
}

func (b *Board) OpenDelete(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.store.FindDisplayed(id)
	if !ok {
		return errs.Wrapf(errs.ErrReservationNotFound, "reservation %d", id)
	}
	return b.transition(b.dialog.OpenConfirmDelete(r))
}

// EditSelected moves from the info dialog to the edit form
func (b *Board) EditSelected() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.dialog.require(DialogInfo); err != nil {
		return err
	}
	return b.transition(b.dialog.OpenEdit(b.dialog.selected))
}

// DeleteSelected asks for confirmation on top of the info dialog
func (b *Board) DeleteSelected() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.dialog.require(DialogInfo); err != nil {
		return err
	}
	return b.transition(b.dialog.OpenConfirmDelete(b.dialog.selected))
}

func (b *Board) Dismiss() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transition(b.dialog.Dismiss())
}

// Submit creates or updates the reservation of the open form. A failed
// mutation keeps the form open with what was typed; a successful one closes
// it before the list is fetched again.
func (b *Board) Submit(ctx context.Context, in FormInput) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.dialog.require(DialogForm); err != nil {
		return err
	}

	form := b.dialog.form
	form.ClientName = in.ClientName
	form.Date = in.Date
	form.Amount = reservation.ParseAmountInput(in.AmountText)
	form.Notes = in.Notes
	if err := b.transition(b.dialog.WithForm(form)); err != nil {
		return err
	}

	failMsg, okMsg := MsgCreateFailed, MsgCreated
	if b.dialog.mode == FormEdit {
		failMsg, okMsg = MsgUpdateFailed, MsgUpdated
	}

	if err := b.mutate(ctx, form); err != nil {
		b.fail("submit reservation", failMsg, err)
		return nil
	}

	b.dialog = NoDialog()
	b.banner.Show(NotificationSuccess, okMsg, b.clock.Now())
	b.refresh(ctx)
	return nil
}

func (b *Board) mutate(ctx context.Context, form Form) error {
	r := form.Reservation()
	if err := reservation.ValidateDate(r.Date); err != nil {
		return err
	}
	if err := reservation.ValidateAmount(r.Amount); err != nil {
		return err
	}

	if b.dialog.mode == FormEdit {
		if r.ID == nil {
			return errs.Wrap(errs.ErrReservationNotFound, "edited reservation has no id")
		}
		_, err := b.api.Update(ctx, *r.ID, r)
		return err
	}
	_, err := b.api.Create(ctx, r)
	return err
}

// ConfirmDelete deletes the reservation under confirmation. On success both
// the confirmation and the info dialog beneath it are closed.
func (b *Board) ConfirmDelete(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.dialog.require(DialogConfirmDelete); err != nil {
		return err
	}

	target := b.dialog.selected
	var err error
	if target.ID == nil {
		err = errs.Wrap(errs.ErrReservationNotFound, "reservation has no id")
	} else {
		err = b.api.Delete(ctx, *target.ID)
	}
	if err != nil {
		b.fail("delete reservation", MsgDeleteFailed, err)
		return nil
	}

	b.dialog = NoDialog()
	b.banner.Show(NotificationSuccess, MsgDeleted, b.clock.Now())
	b.refresh(ctx)
	return nil
}

func (b *Board) refresh(ctx context.Context) {
	list, err := b.api.List(ctx)
	if err != nil {
		b.fail("list reservations", MsgListFailed, err)
		return
	}
	b.store.Replace(list)
}

func (b *Board) fail(action, message string, err error) {
	b.logger.Error("board action failed",
		"action", action,
		"error", err,
		"request_failed", errs.Is(err, errs.ErrRequestFailed),
	)
	b.logger.Debug("board action failure detail", "action", action, "stack", errs.ExtractStackLines(err, 8))
	b.banner.Show(NotificationError, message, b.clock.Now())
}

func (b *Board) transition(next Dialog, err error) error {
	if err != nil {
		return err
	}
	b.dialog = next
	return nil
}

func (b *Board) today() time.Time {
	return calendar.Today(b.clock.Now(), b.settings.Location)
}

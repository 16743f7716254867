package board

import (
	"evcontrol/internal/domain/reservation"
	"evcontrol/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type DialogKind string

const (
	DialogNone          DialogKind = "none"
	DialogForm          DialogKind = "form"
	DialogInfo          DialogKind = "info"
	DialogConfirmDelete DialogKind = "confirm_delete"
)

type FormMode string

const (
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

// Form holds the fields of the create/edit dialog
type Form struct {
	ID         *int64
	ClientName string
	Date       string
	Amount     decimal.Decimal
	Notes      string
}

func formFrom(r reservation.Reservation) Form {
	var f Form
	if err := copier.Copy(&f, &r); err != nil {
		// identical field sets, copier cannot fail here
		panic(err)
	}
	return f
}

func (f Form) Reservation() reservation.Reservation {
	var r reservation.Reservation
	if err := copier.Copy(&r, &f); err != nil {
		panic(err)
	}
	return r
}

// Dialog is the single dialog state of a board. At most one dialog is open;
// a delete confirmation remembers whether it was opened from the info dialog.
type Dialog struct {
	kind     DialogKind
	mode     FormMode
	form     Form
	selected reservation.Reservation
	returnTo DialogKind
}

func NoDialog() Dialog {
	return Dialog{kind: DialogNone}
}

func (d Dialog) Kind() DialogKind                  { return d.kind }
func (d Dialog) Mode() FormMode                    { return d.mode }
func (d Dialog) Form() Form                        { return d.form }
func (d Dialog) Selected() reservation.Reservation { return d.selected.Clone() }
func (d Dialog) ReturnTo() DialogKind              { return d.returnTo }

func (d Dialog) IsOpen() bool {
	return d.kind != DialogNone && d.kind != ""
}

func (d Dialog) require(kinds ...DialogKind) error {
	current := d.kind
	if current == "" {
		current = DialogNone
	}
	for _, k := range kinds {
		if current == k {
			return nil
		}
	}
	return errs.Wrapf(errs.ErrInvalidTransition, "dialog is %s", current)
}

func (d Dialog) OpenCreate(date string) (Dialog, error) {
	if err := d.require(DialogNone); err != nil {
		return d, err
	}
	return Dialog{kind: DialogForm, mode: FormCreate, form: formFrom(reservation.NewDraft(date))}, nil
}

// OpenEdit works from the list (no dialog) and from the info dialog
func (d Dialog) OpenEdit(r reservation.Reservation) (Dialog, error) {
	if err := d.require(DialogNone, DialogInfo); err != nil {
		return d, err
	}
	return Dialog{kind: DialogForm, mode: FormEdit, form: formFrom(r)}, nil
}

func (d Dialog) OpenInfo(r reservation.Reservation) (Dialog, error) {
	if err := d.require(DialogNone); err != nil {
		return d, err
	}
	return Dialog{kind: DialogInfo, selected: r.Clone()}, nil
}

func (d Dialog) OpenConfirmDelete(r reservation.Reservation) (Dialog, error) {
	if err := d.require(DialogNone, DialogInfo); err != nil {
		return d, err
	}
	returnTo := DialogNone
	if d.kind == DialogInfo {
		returnTo = DialogInfo
	}
	return Dialog{kind: DialogConfirmDelete, selected: r.Clone(), returnTo: returnTo}, nil
}

// WithForm replaces the form fields while the form stays open
func (d Dialog) WithForm(f Form) (Dialog, error) {
	if err := d.require(DialogForm); err != nil {
		return d, err
	}
	d.form = f
	return d, nil
}

// Dismiss is cancel/close: a confirmation falls back to where it came from
func (d Dialog) Dismiss() (Dialog, error) {
	if err := d.require(DialogForm, DialogInfo, DialogConfirmDelete); err != nil {
		return d, err
	}
	if d.kind == DialogConfirmDelete && d.returnTo == DialogInfo {
		return Dialog{kind: DialogInfo, selected: d.selected}, nil
	}
	return NoDialog(), nil
}

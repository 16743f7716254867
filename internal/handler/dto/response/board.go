package response

import (
	"evcontrol/internal/domain/calendar"
	"evcontrol/internal/usecase/board"
)

type BoardResponse struct {
	Month        string                `json:"month"`
	Title        string                `json:"title"`
	Query        string                `json:"query"`
	Dark         bool                  `json:"dark"`
	Reservations []ReservationResponse `json:"reservations"`
	Calendar     CalendarResponse      `json:"calendar"`
	Dialog       DialogResponse        `json:"dialog"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

type CalendarResponse struct {
	Weekdays []string        `json:"weekdays"`
	Weeks    [][]DayResponse `json:"weeks"`
}

type DayResponse struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"inMonth"`
	Reserved bool   `json:"reserved"`
	Today    bool   `json:"today"`
	Label    string `json:"label,omitempty"`
	Class    string `json:"class"`
}

type DialogResponse struct {
	Kind     string               `json:"kind"`
	Mode     string               `json:"mode,omitempty"`
	Form     *FormResponse        `json:"form,omitempty"`
	Selected *ReservationResponse `json:"selected,omitempty"`
	ReturnTo string               `json:"returnTo,omitempty"`
}

type FormResponse struct {
	ID           *int64 `json:"id,omitempty"`
	NomeCliente  string `json:"nomeCliente"`
	DataReserva  string `json:"dataReserva"`
	ValorCobrado string `json:"valorCobrado"`
	Observacoes  string `json:"observacoes"`
}

type NotificationResponse struct {
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	RemainingMs int64  `json:"remainingMs"`
}

func FromBoardView(v board.View) BoardResponse {
	resp := BoardResponse{
		Month:        v.Month.String(),
		Title:        v.Title,
		Query:        v.Query,
		Dark:         v.Dark,
		Reservations: FromReservations(v.Reservations),
		Calendar:     fromGrid(v.Grid),
		Dialog:       fromDialog(v.Dialog),
	}
	if v.Notification != nil {
		resp.Notification = &NotificationResponse{
			Kind:        string(v.Notification.Kind),
			Message:     v.Notification.Message,
			RemainingMs: v.Notification.RemainingMillis(),
		}
	}
	return resp
}

func fromGrid(g calendar.Grid) CalendarResponse {
	weeks := make([][]DayResponse, len(g.Weeks))
	for i, week := range g.Weeks {
		days := make([]DayResponse, len(week))
		for j, d := range week {
			days[j] = DayResponse{
				Date:     d.ISO,
				Day:      d.Number,
				InMonth:  d.InActiveMonth,
				Reserved: d.HasReservation,
				Today:    d.IsToday,
				Label:    d.Label,
				Class:    d.Class,
			}
		}
		weeks[i] = days
	}
	return CalendarResponse{Weekdays: g.Weekdays, Weeks: weeks}
}

func fromDialog(d board.DialogView) DialogResponse {
	resp := DialogResponse{Kind: string(d.Kind)}
	if d.ReturnTo != "" && d.ReturnTo != board.DialogNone {
		resp.ReturnTo = string(d.ReturnTo)
	}

	switch d.Kind {
	case board.DialogForm:
		resp.Mode = string(d.Mode)
		resp.Form = &FormResponse{
			ID:           d.Form.ID,
			NomeCliente:  d.Form.ClientName,
			DataReserva:  d.Form.Date,
			ValorCobrado: d.Form.AmountText,
			Observacoes:  d.Form.Notes,
		}
	case board.DialogInfo, board.DialogConfirmDelete:
		if d.Selected != nil {
			sel := FromReservation(*d.Selected)
			resp.Selected = &sel
		}
	}
	return resp
}

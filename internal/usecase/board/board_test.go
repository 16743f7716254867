//go:build unit

package board_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"evcontrol/internal/domain/reservation"
	"evcontrol/internal/pkg/clock"
	"evcontrol/internal/pkg/errs"
	"evcontrol/internal/usecase/board"
	"evcontrol/tests/common/builder"
	boardmock "evcontrol/tests/mock/board"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BoardTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	api      *boardmock.MockReservationAPI
	clock    *clock.MockClock
	board    *board.Board
}

func (s *BoardTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.api = boardmock.NewMockReservationAPI(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC))
	s.board = board.NewBoard(s.api, s.clock, slog.New(slog.NewTextHandler(io.Discard, nil)), board.Settings{
		Location:             time.UTC,
		WeekStart:            time.Sunday,
		NotificationDuration: 3 * time.Second,
	})
}

func (s *BoardTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}

func (s *BoardTestSuite) mount(list ...reservation.Reservation) {
	s.api.EXPECT().List(gomock.Any()).Return(list, nil).Times(1)
	s.board.Mount(s.ctx)
}

func (s *BoardTestSuite) ana() reservation.Reservation {
	return builder.NewReservationBuilder().WithID(1).WithClient("Ana").WithDate("2024-05-10").WithAmount("150").BuildDomain()
}

func (s *BoardTestSuite) bruno() reservation.Reservation {
	return builder.NewReservationBuilder().WithID(2).WithClient("Bruno").WithDate("2024-05-20").WithAmount("80.5").BuildDomain()
}

func (s *BoardTestSuite) notification() (board.NotificationKind, string) {
	n := s.board.View().Notification
	if n == nil {
		return "", ""
	}
	return n.Kind, n.Message
}

// ================================================================================
// Mount / Reload
// ================================================================================

func (s *BoardTestSuite) TestMount() {
	s.Run("shows the fetched list", func() {
		s.SetupTest()
		s.mount(s.ana(), s.bruno())

		v := s.board.View()
		s.Len(v.Reservations, 2)
		s.Nil(v.Notification)
		s.Equal("2024-05", v.Month.String())
		s.Equal(board.DialogNone, v.Dialog.Kind)
	})

	s.Run("failure leaves an empty list and an error banner", func() {
		s.SetupTest()
		s.api.EXPECT().List(gomock.Any()).Return(nil, errs.ErrRequestFailed).Times(1)
		s.board.Mount(s.ctx)

		v := s.board.View()
		s.Empty(v.Reservations)
		kind, msg := s.notification()
		s.Equal(board.NotificationError, kind)
		s.Equal(board.MsgListFailed, msg)
	})

	s.Run("failed reload keeps the previous list", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.api.EXPECT().List(gomock.Any()).Return(nil, errs.ErrRequestFailed).Times(1)
		s.board.Reload(s.ctx)

		s.Len(s.board.View().Reservations, 1)
		_, msg := s.notification()
		s.Equal(board.MsgListFailed, msg)
	})

	s.Run("only the latest failure is shown", func() {
		s.SetupTest()
		s.api.EXPECT().List(gomock.Any()).Return(nil, errs.ErrRequestFailed).Times(1)
		s.board.Mount(s.ctx)
		s.Require().NoError(s.board.OpenNew())

		s.clock.Add(time.Second)
		s.api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(reservation.Reservation{}, errs.ErrRequestFailed).Times(1)
		s.Require().NoError(s.board.Submit(s.ctx, board.FormInput{ClientName: "Ana", Date: "2024-05-10", AmountText: "10"}))

		_, msg := s.notification()
		s.Equal(board.MsgCreateFailed, msg)

		s.clock.Add(2500 * time.Millisecond)
		_, msg = s.notification()
		s.Equal(board.MsgCreateFailed, msg, "the replacement restarts the timer")

		s.clock.Add(time.Second)
		s.Nil(s.board.View().Notification)
	})
}

// ================================================================================
// Search / calendar
// ================================================================================

func (s *BoardTestSuite) TestSearchAndCalendar() {
	s.Run("filter drives list and calendar", func() {
		s.SetupTest()
		s.mount(s.ana(), s.bruno())

		s.board.Search("BRU")
		v := s.board.View()
		s.Require().Len(v.Reservations, 1)
		s.Equal("Bruno", v.Reservations[0].ClientName)
		s.Equal("BRU", v.Query)

		s.Require().NoError(s.board.ClickDay("2024-05-10"))
		v = s.board.View()
		s.Equal(board.DialogForm, v.Dialog.Kind, "hidden reservation's day looks free")
		s.Equal("2024-05-10", v.Dialog.Form.Date)
	})

	s.Run("clear search", func() {
		s.SetupTest()
		s.mount(s.ana(), s.bruno())
		s.board.Search("zzz")
		s.Empty(s.board.View().Reservations)

		s.board.ClearSearch()
		s.Len(s.board.View().Reservations, 2)
	})

	s.Run("navigate and back to today", func() {
		s.SetupTest()
		s.mount()

		s.board.NavigateMonth(-5)
		s.Equal("2023-12", s.board.View().Month.String())
		s.board.NavigateMonth(14)
		s.Equal("2025-02", s.board.View().Month.String())

		s.board.GoToToday()
		s.Equal("2024-05", s.board.View().Month.String())
	})

	s.Run("clicking a reserved day opens its info", func() {
		s.SetupTest()
		s.mount(s.ana())

		s.Require().NoError(s.board.ClickDay("2024-05-10"))
		v := s.board.View()
		s.Equal(board.DialogInfo, v.Dialog.Kind)
		s.Require().NotNil(v.Dialog.Selected)
		s.Equal("Ana", v.Dialog.Selected.ClientName)
	})

	s.Run("clicking while a dialog is open is rejected", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.Require().NoError(s.board.OpenNew())

		s.ErrorIs(s.board.ClickDay("2024-05-10"), errs.ErrInvalidTransition)
	})

	s.Run("invalid day", func() {
		s.SetupTest()
		s.mount()
		s.ErrorIs(s.board.ClickDay("10/05/2024"), reservation.ErrInvalidDate)
	})

	s.Run("theme toggles", func() {
		s.SetupTest()
		s.mount()
		s.board.ToggleTheme()
		s.True(s.board.View().Dark)
		s.board.ToggleTheme()
		s.False(s.board.View().Dark)
	})
}

// ================================================================================
// Submit
// ================================================================================

func (s *BoardTestSuite) TestSubmit() {
	s.Run("create posts the parsed form and reloads", func() {
		s.SetupTest()
		s.mount()
		s.Require().NoError(s.board.ClickDay("2024-05-11"))

		var posted reservation.Reservation
		s.api.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r reservation.Reservation) (reservation.Reservation, error) {
				posted = r
				return r, nil
			}).Times(1)
		created := builder.NewReservationBuilder().WithID(9).WithClient("Carla").WithDate("2024-05-11").WithAmount("1250").BuildDomain()
		s.api.EXPECT().List(gomock.Any()).Return([]reservation.Reservation{created}, nil).Times(1)

		err := s.board.Submit(s.ctx, board.FormInput{
			ClientName: "Carla",
			Date:       "2024-05-11",
			AmountText: "R$ 1.250,00",
			Notes:      "aniversário",
		})
		s.Require().NoError(err)

		s.Nil(posted.ID)
		s.Equal("Carla", posted.ClientName)
		s.Equal("2024-05-11", posted.Date)
		s.True(posted.Amount.Equal(decimal.NewFromInt(1250)))
		s.Equal("aniversário", posted.Notes)

		v := s.board.View()
		s.Equal(board.DialogNone, v.Dialog.Kind)
		s.Len(v.Reservations, 1)
		kind, msg := s.notification()
		s.Equal(board.NotificationSuccess, kind)
		s.Equal(board.MsgCreated, msg)
	})

	s.Run("failed create keeps the form with what was typed", func() {
		s.SetupTest()
		s.mount()
		s.Require().NoError(s.board.OpenNew())
		s.api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(reservation.Reservation{}, errs.ErrRequestFailed).Times(1)

		s.Require().NoError(s.board.Submit(s.ctx, board.FormInput{ClientName: "Carla", Date: "2024-05-11", AmountText: "12,50"}))

		v := s.board.View()
		s.Equal(board.DialogForm, v.Dialog.Kind)
		s.Equal("Carla", v.Dialog.Form.ClientName)
		s.Equal("R$ 12,50", v.Dialog.Form.AmountText)
		_, msg := s.notification()
		s.Equal(board.MsgCreateFailed, msg)
	})

	s.Run("edit puts to the reservation id", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.Require().NoError(s.board.OpenEdit(1))
		s.Equal("R$ 150,00", s.board.View().Dialog.Form.AmountText)

		s.api.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, r reservation.Reservation) (reservation.Reservation, error) {
				s.Equal("Ana Maria", r.ClientName)
				s.Require().NotNil(r.ID)
				return r, nil
			}).Times(1)
		s.api.EXPECT().List(gomock.Any()).Return([]reservation.Reservation{s.ana()}, nil).Times(1)

		s.Require().NoError(s.board.Submit(s.ctx, board.FormInput{ClientName: "Ana Maria", Date: "2024-05-10", AmountText: "150"}))

		s.Equal(board.DialogNone, s.board.View().Dialog.Kind)
		_, msg := s.notification()
		s.Equal(board.MsgUpdated, msg)
	})

	s.Run("failed edit", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.Require().NoError(s.board.OpenEdit(1))
		s.api.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(reservation.Reservation{}, errs.ErrRequestFailed).Times(1)

		s.Require().NoError(s.board.Submit(s.ctx, board.FormInput{ClientName: "Ana", Date: "2024-05-10"}))

		s.Equal(board.DialogForm, s.board.View().Dialog.Kind)
		_, msg := s.notification()
		s.Equal(board.MsgUpdateFailed, msg)
	})

	s.Run("reload failure after a successful save wins", func() {
		s.SetupTest()
		s.mount()
		s.Require().NoError(s.board.OpenNew())
		s.api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(s.ana(), nil).Times(1)
		s.api.EXPECT().List(gomock.Any()).Return(nil, errs.ErrRequestFailed).Times(1)

		s.Require().NoError(s.board.Submit(s.ctx, board.FormInput{ClientName: "Ana", Date: "2024-05-10"}))

		s.Equal(board.DialogNone, s.board.View().Dialog.Kind)
		kind, msg := s.notification()
		s.Equal(board.NotificationError, kind)
		s.Equal(board.MsgListFailed, msg)
	})

	s.Run("malformed date is a failed submit", func() {
		s.SetupTest()
		s.mount()
		s.Require().NoError(s.board.OpenNew())

		s.Require().NoError(s.board.Submit(s.ctx, board.FormInput{ClientName: "Ana", Date: "amanhã"}))

		s.Equal(board.DialogForm, s.board.View().Dialog.Kind)
		_, msg := s.notification()
		s.Equal(board.MsgCreateFailed, msg)
	})

	s.Run("submit without a form", func() {
		s.SetupTest()
		s.mount()
		s.ErrorIs(s.board.Submit(s.ctx, board.FormInput{}), errs.ErrInvalidTransition)
	})

	s.Run("edit of an unknown reservation", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.ErrorIs(s.board.OpenEdit(42), errs.ErrReservationNotFound)
	})
}

// ================================================================================
// Delete
// ================================================================================

func (s *BoardTestSuite) TestDelete() {
	s.Run("delete from the info dialog closes both dialogs", func() {
		s.SetupTest()
		s.mount(s.ana(), s.bruno())
		s.Require().NoError(s.board.ClickDay("2024-05-10"))
		s.Require().NoError(s.board.DeleteSelected())

		v := s.board.View()
		s.Equal(board.DialogConfirmDelete, v.Dialog.Kind)
		s.Equal(board.DialogInfo, v.Dialog.ReturnTo)

		s.api.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)
		s.api.EXPECT().List(gomock.Any()).Return([]reservation.Reservation{s.bruno()}, nil).Times(1)
		s.Require().NoError(s.board.ConfirmDelete(s.ctx))

		v = s.board.View()
		s.Equal(board.DialogNone, v.Dialog.Kind)
		s.Len(v.Reservations, 1)
		kind, msg := s.notification()
		s.Equal(board.NotificationSuccess, kind)
		s.Equal(board.MsgDeleted, msg)
	})

	s.Run("cancel goes back to the info dialog", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.Require().NoError(s.board.ClickDay("2024-05-10"))
		s.Require().NoError(s.board.DeleteSelected())
		s.Require().NoError(s.board.Dismiss())

		s.Equal(board.DialogInfo, s.board.View().Dialog.Kind)
	})

	s.Run("failed delete keeps the confirmation", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.Require().NoError(s.board.OpenDelete(1))
		s.api.EXPECT().Delete(gomock.Any(), int64(1)).Return(errs.ErrRequestFailed).Times(1)

		s.Require().NoError(s.board.ConfirmDelete(s.ctx))

		v := s.board.View()
		s.Equal(board.DialogConfirmDelete, v.Dialog.Kind)
		s.Len(v.Reservations, 1)
		_, msg := s.notification()
		s.Equal(board.MsgDeleteFailed, msg)
	})

	s.Run("confirm without a pending delete", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.ErrorIs(s.board.ConfirmDelete(s.ctx), errs.ErrInvalidTransition)
	})

	s.Run("info leads to edit", func() {
		s.SetupTest()
		s.mount(s.ana())
		s.Require().NoError(s.board.ClickDay("2024-05-10"))
		s.Require().NoError(s.board.EditSelected())

		v := s.board.View()
		s.Equal(board.DialogForm, v.Dialog.Kind)
		s.Equal(board.FormEdit, v.Dialog.Mode)
		s.Equal("Ana", v.Dialog.Form.ClientName)
	})
}

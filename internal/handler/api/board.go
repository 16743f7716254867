package api

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"evcontrol/internal/domain/calendar"
	"evcontrol/internal/domain/reservation"
	reqdto "evcontrol/internal/handler/dto/request"
	resdto "evcontrol/internal/handler/dto/response"
	"evcontrol/internal/handler/httperr"
	"evcontrol/internal/handler/middleware"
	"evcontrol/internal/handler/view"
	"evcontrol/internal/pkg/errs"
	"evcontrol/internal/usecase/board"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// BoardHandler serves the page and the actions of the calling session's
// board. Every action answers with the new board state as JSON when the
// client asks for it, or with a redirect back to the page otherwise.
type BoardHandler struct{}

func NewBoardHandler() *BoardHandler {
	return &BoardHandler{}
}

type pageData struct {
	View      board.View
	CSRFField template.HTML
}

// @Summary Board page
// @Description Render the reservations list and calendar of the session
// @Tags board
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *BoardHandler) Page(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, view.IndexTemplate, pageData{
		View:      b.View(),
		CSRFField: csrf.TemplateField(c.Request),
	})
}

// @Summary Board state
// @Description Current board state of the session
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Router /api/board [get]
func (h *BoardHandler) State(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	c.Header("X-CSRF-Token", csrf.Token(c.Request))
	c.JSON(http.StatusOK, resdto.FromBoardView(b.View()))
}

// @Summary Reload reservations
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Router /ui/reload [post]
func (h *BoardHandler) Reload(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		b.Reload(c.Request.Context())
		return nil
	})
}

// @Summary Filter by client name
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce json
// @Param q formData string false "Search text"
// @Success 200 {object} resdto.BoardResponse
// @Router /ui/search [post]
func (h *BoardHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		b.Search(req.Query)
		return nil
	})
}

// @Summary Clear the filter
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Router /ui/search/clear [post]
func (h *BoardHandler) ClearSearch(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		b.ClearSearch()
		return nil
	})
}

// @Summary Move the calendar by months
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce json
// @Param delta formData int true "Months to move, negative goes back"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /ui/calendar/navigate [post]
func (h *BoardHandler) Navigate(c *gin.Context) {
	var req reqdto.NavigateRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month delta", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		b.NavigateMonth(req.Delta)
		return nil
	})
}

// @Summary Show a given month
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce json
// @Param month formData string true "Month as YYYY-MM"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /ui/calendar/month [post]
func (h *BoardHandler) GoToMonth(c *gin.Context) {
	var req reqdto.MonthRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}
	m, err := calendar.ParseMonth(req.Month)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		b.GoToMonth(m)
		return nil
	})
}

// @Summary Show the current month
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Router /ui/calendar/today [post]
func (h *BoardHandler) Today(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		b.GoToToday()
		return nil
	})
}

// @Summary Click a calendar day
// @Description Opens the reservation of the day, or the creation form for a free day
// @Tags board
// @Produce json
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /ui/days/{date} [post]
func (h *BoardHandler) ClickDay(c *gin.Context) {
	var req reqdto.DayRequest
	if err := c.ShouldBindUri(&req); err != nil || !req.Valid() {
		httperr.AbortWithError(c, http.StatusBadRequest, reservation.ErrInvalidDate, "Invalid date", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		return b.ClickDay(req.Date)
	})
}

// @Summary Open the creation form
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Failure 409 {object} httperr.Response
// @Router /ui/reservations/new [post]
func (h *BoardHandler) OpenNew(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		return b.OpenNew()
	})
}

// @Summary Open the edit form of a listed reservation
// @Tags board
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /ui/reservations/{id}/edit [post]
func (h *BoardHandler) OpenEdit(c *gin.Context) {
	var req reqdto.ReservationIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		return b.OpenEdit(req.ID)
	})
}

// @Summary Ask to delete a listed reservation
// @Tags board
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /ui/reservations/{id}/delete [post]
func (h *BoardHandler) OpenDelete(c *gin.Context) {
	var req reqdto.ReservationIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		return b.OpenDelete(req.ID)
	})
}

// @Summary Submit the create/edit form
// @Description Backend failures are reported through the notification and keep the form open
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce json
// @Param nomeCliente formData string false "Client name"
// @Param dataReserva formData string false "Day as YYYY-MM-DD"
// @Param valorCobrado formData string false "Amount as typed"
// @Param observacoes formData string false "Notes"
// @Success 200 {object} resdto.BoardResponse
// @Failure 409 {object} httperr.Response
// @Router /ui/dialog/submit [post]
func (h *BoardHandler) Submit(c *gin.Context) {
	var req reqdto.ReservationFormRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	h.act(c, func(b *board.Board) error {
		return b.Submit(c.Request.Context(), board.FormInput{
			ClientName: req.ClientName,
			Date:       req.Date,
			AmountText: req.Amount,
			Notes:      req.Notes,
		})
	})
}

// @Summary Edit the reservation shown in the info dialog
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Failure 409 {object} httperr.Response
// @Router /ui/dialog/edit [post]
func (h *BoardHandler) EditSelected(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		return b.EditSelected()
	})
}

// @Summary Ask to delete the reservation shown in the info dialog
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Failure 409 {object} httperr.Response
// @Router /ui/dialog/delete [post]
func (h *BoardHandler) DeleteSelected(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		return b.DeleteSelected()
	})
}

// @Summary Confirm the pending delete
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Failure 409 {object} httperr.Response
// @Router /ui/dialog/confirm-delete [post]
func (h *BoardHandler) ConfirmDelete(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		return b.ConfirmDelete(c.Request.Context())
	})
}

// @Summary Cancel or close the open dialog
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Failure 409 {object} httperr.Response
// @Router /ui/dialog/dismiss [post]
func (h *BoardHandler) Dismiss(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		return b.Dismiss()
	})
}

// @Summary Switch between light and dark theme
// @Tags board
// @Produce json
// @Success 200 {object} resdto.BoardResponse
// @Router /ui/theme/toggle [post]
func (h *BoardHandler) ToggleTheme(c *gin.Context) {
	h.act(c, func(b *board.Board) error {
		b.ToggleTheme()
		return nil
	})
}

func (h *BoardHandler) board(c *gin.Context) (*board.Board, bool) {
	b, ok := middleware.GetBoard(c)
	if !ok {
		// session middleware must run first
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrSessionNotFound, "Internal server error", nil)
		return nil, false
	}
	return b, true
}

func (h *BoardHandler) act(c *gin.Context, action func(b *board.Board) error) {
	b, ok := h.board(c)
	if !ok {
		return
	}

	if err := action(b); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTransition):
			h.reject(c, http.StatusConflict, err, "Action not allowed in the current dialog state")
		case errors.Is(err, errs.ErrReservationNotFound):
			h.reject(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, reservation.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.respond(c, b)
}

// reject answers JSON clients with the error. A browser posting from a stale
// page is sent back to the current state instead.
func (h *BoardHandler) reject(c *gin.Context, status int, err error, msg string) {
	if wantsJSON(c) {
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}
	slog.Warn("stale board action", "path", c.Request.URL.Path, "error", err.Error())
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *BoardHandler) respond(c *gin.Context, b *board.Board) {
	if wantsJSON(c) {
		c.JSON(http.StatusOK, resdto.FromBoardView(b.View()))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

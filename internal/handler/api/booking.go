package api

import (
	"log/slog"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an internal room or an external catalog room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), identity, input)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.render(c, http.StatusCreated, identity, id, "")
}

// @Summary List my bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/my-bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), identity)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List all bookings
// @Description List every booking with its owner (admin only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	views, err := h.q.ListAll(c.Request.Context(), identity)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking owned by the caller (admins can read any)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel one of the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.cmds.Cancel(c.Request.Context(), identity, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.render(c, http.StatusOK, identity, id, "Booking cancelled successfully")
}

// @Summary Update booking status
// @Description Overwrite a booking status (admin only)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	if err := h.cmds.UpdateStatus(c.Request.Context(), identity, id, req.Status); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.render(c, http.StatusOK, identity, id, "Booking status updated successfully")
}

// @Summary Booking statistics
// @Description Totals, status breakdown, last six months, top hotels and recent bookings (admin only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingStatsResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), identity)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingStats(stats))
}

// render reloads the booking after a write. An empty message renders the bare booking.
func (h *BookingHandler) render(c *gin.Context, status int, identity shared.Identity, id, message string) {
	view, err := h.q.Get(c.Request.Context(), identity, id)
	if err != nil {
		slog.Error("failed to load booking after write", "booking_id", id, "error", err.Error())
		httperr.FromError(c, err)
		return
	}
	if message == "" {
		c.JSON(status, resdto.FromBookingView(view))
		return
	}
	c.JSON(status, resdto.BookingActionResponse{Message: message, Booking: resdto.FromBookingView(view)})
}

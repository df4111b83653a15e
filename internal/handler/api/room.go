package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Description Paginated room listing with search, price, capacity, availability and hotel filters
// @Tags rooms
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "createdAt, updatedAt, name, pricePerNight or capacity"
// @Param order query string false "asc or desc (default desc)"
// @Param search query string false "Full-text search"
// @Param minPrice query number false "Minimum price per night"
// @Param maxPrice query number false "Maximum price per night"
// @Param minCapacity query int false "Minimum capacity"
// @Param available query bool false "Availability"
// @Param hotel query string false "Hotel ID"
// @Param amenities query string false "Comma separated amenities, all must match"
// @Success 200 {object} resdto.RoomListResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var query reqdto.RoomListQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomPage(page))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Description Create a room (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), identity, fields)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.render(c, http.StatusCreated, id)
}

// @Summary Update room
// @Description Partially update a room (admin only)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	if err := h.cmds.Update(c.Request.Context(), identity, id, req.ToPatch()); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Delete room
// @Description Delete a room (admin only)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.cmds.Delete(c.Request.Context(), identity, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResponse{Message: "Room deleted successfully", ID: id})
}

func (h *RoomHandler) render(c *gin.Context, status int, id string) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, resdto.FromRoomView(view))
}

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

type HotelHandler struct {
	cmds commands.HotelCommands
	q    queries.HotelQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q}
}

// @Summary List hotels
// @Description Paginated hotel listing with full-text search, price, rating and amenity filters
// @Tags hotels
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "createdAt, updatedAt, name, price or rating"
// @Param order query string false "asc or desc (default desc)"
// @Param search query string false "Full-text search"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minRating query number false "Minimum rating"
// @Param amenities query string false "Comma separated amenities, all must match"
// @Success 200 {object} resdto.HotelListResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels/all [get]
func (h *HotelHandler) List(c *gin.Context) {
	var query reqdto.HotelListQuery
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
	c.JSON(http.StatusOK, resdto.FromHotelPage(page))
}

// @Summary Search hotels
// @Description Search the configured hotel catalog by location; ALL returns everything
// @Tags hotels
// @Produce json
// @Param location query string false "City or address fragment (default ALL)"
// @Success 200 {array} resdto.HotelResponse
// @Failure 500 {object} httperr.Response
// @Router /hotels/search [get]
func (h *HotelHandler) Search(c *gin.Context) {
	hotels, err := h.q.Search(c.Request.Context(), c.DefaultQuery("location", queries.SearchAll))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(hotels))
}

// @Summary Get hotel
// @Description Get a hotel from the local collection or the configured catalog
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Create hotel
// @Description Create a hotel (admin only)
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateHotelRequest
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

// @Summary Update hotel
// @Description Partially update a hotel (admin only)
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Fields to change"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [put]
func (h *HotelHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.UpdateHotelRequest
	if !bindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	p, err := req.ToPatch()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), identity, id, p); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary Delete hotel
// @Description Delete a hotel; rooms pointing at it are left untouched (admin only)
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := h.cmds.Delete(c.Request.Context(), identity, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResponse{Message: "Hotel deleted successfully", ID: id})
}

func (h *HotelHandler) render(c *gin.Context, status int, id string) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, resdto.FromHotelView(view))
}

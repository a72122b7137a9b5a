package handler

import (
	"strconv"

	"github.com/boyarintsev1/shareit/internal/application"
	bookingDomain "github.com/boyarintsev1/shareit/internal/domain/booking"
	"github.com/boyarintsev1/shareit/internal/middleware"
	"github.com/boyarintsev1/shareit/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireSharerID())
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListForBooker)
		bookings.GET("/owner", h.ListForOwner)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id", h.PatchBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
	}
}

// CreateBooking handles POST /bookings. The server assigns the id; a body
// carrying one is rejected.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	sharerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing sharer id")
		return
	}

	var req struct {
		ID *uuid.UUID `json:"id"`
		application.CreateBookingRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ID != nil {
		response.BadRequest(c, "booking id must not be supplied")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), sharerID, req.CreateBookingRequest)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListForBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	sharerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing sharer id")
		return
	}

	state, from, size, ok := parseStateAndPage(c)
	if !ok {
		return
	}

	result, err := h.service.ListForBooker(c.Request.Context(), sharerID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Size)
}

// ListForOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	sharerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing sharer id")
		return
	}

	state, from, size, ok := parseStateAndPage(c)
	if !ok {
		return
	}

	result, err := h.service.ListForOwner(c.Request.Context(), sharerID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Size)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	sharerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing sharer id")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), sharerID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// PatchBooking handles PATCH /bookings/:id. With an approved query parameter
// it is the owner's decision; without one it is the booker's resubmission.
func (h *BookingHandler) PatchBooking(c *gin.Context) {
	sharerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing sharer id")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if raw, present := c.GetQuery("approved"); present {
		approve, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "invalid approved parameter")
			return
		}

		result, err := h.service.ApproveBooking(c.Request.Context(), sharerID, bookingID, approve)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Success(c, result)
		return
	}

	var req application.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateBooking(c.Request.Context(), sharerID, bookingID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// parseStateAndPage reads the state/from/size query parameters, writing the
// error response itself when any of them is invalid.
func parseStateAndPage(c *gin.Context) (bookingDomain.State, int, int, bool) {
	state, err := bookingDomain.ParseState(c.DefaultQuery("state", bookingDomain.StateAll.String()))
	if err != nil {
		response.Error(c, err)
		return "", 0, 0, false
	}

	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		response.BadRequest(c, "from must be a non-negative integer")
		return "", 0, 0, false
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		response.BadRequest(c, "size must be a positive integer")
		return "", 0, 0, false
	}

	return state, from, size, true
}

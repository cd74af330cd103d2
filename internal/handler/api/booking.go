package api

import (
	"errors"
	"net/http"

	reqdto "cape-tours-api/internal/handler/dto/request"
	resdto "cape-tours-api/internal/handler/dto/response"
	"cape-tours-api/internal/handler/httperr"
	"cape-tours-api/internal/handler/middleware"
	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	statusCommands  commands.BookingStatusCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	statusCommands commands.BookingStatusCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		statusCommands:  statusCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a driver for a tour date; up to two shortlisted drivers are tried in order
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid request format")
		return
	}

	// Anonymous bookings are allowed; a logged-in customer gets the booking
	// linked to their account
	var userID *uuid.UUID
	if actor, ok := middleware.GetActor(c); ok {
		id := actor.UserID
		userID = &id
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDate):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidDate,
				"Date must be a valid YYYY-MM-DD date that is not in the past")
		case errors.Is(err, commands.ErrInvalidGroupSize):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidGroupSize,
				"Group size must be between 1 and 22")
		case errors.Is(err, commands.ErrInvalidCustomer):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidCustomer,
				"Invalid customer details")
		case errors.Is(err, commands.ErrTourNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindTourNotFound,
				"Tour not found")
		case errors.Is(err, commands.ErrDriverNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindDriverNotFound,
				"Driver not found")
		case errors.Is(err, commands.ErrDriverAlreadyBooked):
			httperr.JSON(c, http.StatusConflict, httperr.KindDriverAlreadyBooked,
				"Driver was booked by another customer, please pick another date or driver")
		case errors.Is(err, commands.ErrDriverUnavailable):
			httperr.JSON(c, http.StatusConflict, httperr.KindDriverUnavailable,
				"No shortlisted driver is available on this date")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal,
				"Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindNotFound, "Booking not found")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings (admin only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		return
	}

	items, err := h.bookingQueries.ListAll(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingAccess):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Transition booking status
// @Description Move a booking through pending → confirmed → completed, or cancel it
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid booking ID format")
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid request format")
		return
	}

	view, err := h.statusCommands.TransitionStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindNotFound, "Booking not found")
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidStatus, "Unknown booking status")
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidTransition, "Status transition not allowed")
		case errors.Is(err, commands.ErrStatusAccess):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List driver bookings
// @Description List bookings assigned to a driver
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /drivers/{id}/bookings [get]
func (h *BookingHandler) ListDriverBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		return
	}

	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid driver ID format")
		return
	}

	items, err := h.bookingQueries.ListByDriver(c.Request.Context(), actor, driverID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingAccess):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

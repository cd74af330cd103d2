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

type UnavailabilityHandler struct {
	unavailCommands commands.UnavailabilityCommands
	unavailQueries  queries.UnavailabilityQueries
}

func NewUnavailabilityHandler(
	unavailCommands commands.UnavailabilityCommands,
	unavailQueries queries.UnavailabilityQueries,
) *UnavailabilityHandler {
	return &UnavailabilityHandler{
		unavailCommands: unavailCommands,
		unavailQueries:  unavailQueries,
	}
}

// @Summary Block a date
// @Description Mark a date the driver will not take bookings on. Conflicts with confirmed bookings are rejected.
// @Tags unavailability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Param request body reqdto.CreateBlockRequest true "Block request"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drivers/{id}/unavailability [post]
func (h *UnavailabilityHandler) CreateBlock(c *gin.Context) {
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

	var req reqdto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid request format")
		return
	}

	view, err := h.unavailCommands.Block(c.Request.Context(), actor, driverID, req.Date, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnavailabilityAccess):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
		case errors.Is(err, commands.ErrInvalidDate):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidDate,
				"Date must be a valid YYYY-MM-DD date")
		case errors.Is(err, commands.ErrDriverNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindDriverNotFound, "Driver not found")
		case errors.Is(err, commands.ErrBlockConflict):
			httperr.JSON(c, http.StatusConflict, httperr.KindConflict,
				"Date is already blocked or holds a confirmed booking")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBlockView(view))
}

// @Summary Unblock a date
// @Description Remove an unavailability block
// @Tags unavailability
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Param date path string true "Blocked date (YYYY-MM-DD)"
// @Success 200 "OK"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drivers/{id}/unavailability/{date} [delete]
func (h *UnavailabilityHandler) DeleteBlock(c *gin.Context) {
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

	err = h.unavailCommands.Unblock(c.Request.Context(), actor, driverID, c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnavailabilityAccess):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
		case errors.Is(err, commands.ErrInvalidDate):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidDate,
				"Date must be a valid YYYY-MM-DD date")
		case errors.Is(err, commands.ErrBlockNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindNotFound, "Block not found")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	c.Status(http.StatusOK)
}

// @Summary List blocked dates
// @Description List a driver's unavailability blocks, oldest first
// @Tags unavailability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Param from query string false "Only blocks on or after this date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BlockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /drivers/{id}/unavailability [get]
func (h *UnavailabilityHandler) ListBlocks(c *gin.Context) {
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

	var from *string
	if v := c.Query("from"); v != "" {
		from = &v
	}

	views, err := h.unavailQueries.ListForDriver(c.Request.Context(), actor, driverID, from)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBlockAccess):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
		case errors.Is(err, queries.ErrInvalidBlockDate):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidDate,
				"Date must be a valid YYYY-MM-DD date")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	response := make([]*resdto.BlockResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromBlockView(view)
	}

	c.JSON(http.StatusOK, response)
}

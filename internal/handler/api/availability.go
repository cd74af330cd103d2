package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "cape-tours-api/internal/handler/dto/response"
	"cape-tours-api/internal/handler/httperr"
	"cape-tours-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List available drivers
// @Description Drivers with no block and no active booking on the date. Advisory only; the booking commit re-checks.
// @Tags availability
// @Produce json
// @Param date query string true "Tour date (YYYY-MM-DD)"
// @Param group_size query int true "Group size (1-22)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidDate, "date query parameter is required")
		return
	}

	groupSize, err := strconv.Atoi(c.DefaultQuery("group_size", "1"))
	if err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidGroupSize, "group_size must be a number")
		return
	}

	views, err := h.availabilityQueries.AvailableDrivers(c.Request.Context(), date, groupSize)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidAvailabilityDate):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidDate,
				"Date must be a valid YYYY-MM-DD date")
		case errors.Is(err, queries.ErrInvalidGroupSize):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindInvalidGroupSize,
				"Group size must be between 1 and 22")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableDrivers(date, views))
}

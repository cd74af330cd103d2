package api

import (
	"net/http"

	resdto "cape-tours-api/internal/handler/dto/response"
	"cape-tours-api/internal/handler/httperr"
	"cape-tours-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	tourQueries queries.TourQueries
}

func NewTourHandler(tourQueries queries.TourQueries) *TourHandler {
	return &TourHandler{
		tourQueries: tourQueries,
	}
}

// @Summary List tours
// @Description List active tours with their group-size price brackets
// @Tags tours
// @Produce json
// @Success 200 {array} resdto.TourResponse
// @Router /tours [get]
func (h *TourHandler) ListTours(c *gin.Context) {
	views, err := h.tourQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		return
	}

	response := make([]*resdto.TourResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromTourView(view)
	}

	c.JSON(http.StatusOK, response)
}

package httperr

import (
	"github.com/gin-gonic/gin"
)

// Wire-level error kinds. Clients branch on Kind; Message is for humans only.
const (
	KindValidationFailed    = "ValidationFailed"
	KindInvalidDate         = "InvalidDate"
	KindInvalidGroupSize    = "InvalidGroupSize"
	KindInvalidCustomer     = "InvalidCustomer"
	KindTourNotFound        = "TourNotFound"
	KindDriverNotFound      = "DriverNotFound"
	KindDriverUnavailable   = "DriverUnavailable"
	KindDriverAlreadyBooked = "DriverAlreadyBooked"
	KindInvalidStatus       = "InvalidStatus"
	KindInvalidTransition   = "InvalidTransition"
	KindConflict            = "Conflict"
	KindNotFound            = "NotFound"
	KindUnauthorized        = "Unauthorized"
	KindForbidden           = "Forbidden"
	KindRateLimited         = "RateLimited"
	KindInternal            = "Internal"
)

type Body struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func New(status int, kind, msg string) Response {
	return Response{Status: status, Error: Body{Kind: kind, Message: msg}}
}

// JSON writes the error body without aborting the handler chain.
func JSON(c *gin.Context, status int, kind, msg string) {
	c.JSON(status, New(status, kind, msg))
}

// Abort writes the error body and stops the handler chain; middleware use.
func Abort(c *gin.Context, status int, kind, msg string) {
	c.AbortWithStatusJSON(status, New(status, kind, msg))
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, kind, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

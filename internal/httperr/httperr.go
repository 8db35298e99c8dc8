package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Handle traduz a taxonomia do domínio para HTTP.
func Handle(c *gin.Context, err error) {
	code := apperr.CodeOf(err)

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Write(c, http.StatusBadRequest, code, "invalid request")
	case apperr.KindNotFound:
		Write(c, http.StatusNotFound, code, "not found")
	case apperr.KindConflict:
		Write(c, http.StatusConflict, code, "already exists")
	case apperr.KindConnectivity:
		Write(c, http.StatusServiceUnavailable, code, "temporarily unavailable, try again")
	default:
		Write(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

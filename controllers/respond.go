package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/services"
	"hms-backend/utils"
)

// respondError maps a service error onto the wire. Domain errors keep
// their kind; anything else is an infrastructure failure and must not
// leak details to the caller.
func respondError(c *gin.Context, err error) {
	if kind, ok := services.KindOf(err); ok {
		utils.JSONError(c, statusForKind(kind), string(kind), err.Error())
		return
	}
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.JSONError(c, http.StatusInternalServerError, "internal_error", "internal server error")
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation, services.KindInvalidRange:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindRoomUnavailable, services.KindDuplicatePhone,
		services.KindConflict, services.KindConflictRetryExhausted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/middleware"
)

// requesterID reads the authenticated user. It writes a 401 and returns
// false when the auth middleware did not run.
func requesterID(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Token not provided")
		return 0, false
	}
	return id, true
}

// uintParam parses a positive path parameter, answering 400 otherwise.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.Respond(c, domain.ErrValidation)
		return 0, false
	}
	return uint(v), true
}

package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucUser "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/user"
)

type SessionHandler struct {
	sessionUC *ucUser.CreateSession
}

func NewSessionHandler(sessionUC *ucUser.CreateSession) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, userdomain.ErrValidation)
		return
	}

	session, err := h.sessionUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, session)
}

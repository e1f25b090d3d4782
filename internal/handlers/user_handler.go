package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucUser "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/user"
)

type UserHandler struct {
	users      userdomain.Repository
	registerUC *ucUser.RegisterUser
}

func NewUserHandler(users userdomain.Repository, registerUC *ucUser.RegisterUser) *UserHandler {
	return &UserHandler{users: users, registerUC: registerUC}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Provider bool   `json:"provider"`
}

// --------- Handlers ---------

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, userdomain.ErrValidation)
		return
	}

	u, err := h.registerUC.Execute(c.Request.Context(), ucUser.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Provider: req.Provider,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.User(u))
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	u, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if u == nil {
		httperr.Respond(c, userdomain.ErrNotFound)
		return
	}

	httpresp.OK(c, dto.User(u))
}

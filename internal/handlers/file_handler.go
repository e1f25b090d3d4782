package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucUser "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/user"
)

// MaxUploadSize bounds avatar uploads.
const MaxUploadSize = 5 << 20

type FileHandler struct {
	avatarUC *ucUser.UploadAvatar
}

func NewFileHandler(avatarUC *ucUser.UploadAvatar) *FileHandler {
	return &FileHandler{avatarUC: avatarUC}
}

// POST /files, multipart field "file".
func (h *FileHandler) Upload(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil || header.Size > MaxUploadSize {
		httperr.Respond(c, userdomain.ErrInvalidAvatar)
		return
	}

	src, err := header.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	f, err := h.avatarUC.Execute(c.Request.Context(), ucUser.UploadAvatarInput{
		UserID:   userID,
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, f)
}

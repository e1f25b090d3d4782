package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucNotification "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/notification"
)

type NotificationHandler struct {
	listUC     *ucNotification.ListNotifications
	markReadUC *ucNotification.MarkRead
}

func NewNotificationHandler(
	listUC *ucNotification.ListNotifications,
	markReadUC *ucNotification.MarkRead,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:     listUC,
		markReadUC: markReadUC,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	n, err := h.markReadUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, n)
}

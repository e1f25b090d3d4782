package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

type ScheduleHandler struct {
	scheduleUC *ucAppointment.ListProviderSchedule
}

func NewScheduleHandler(scheduleUC *ucAppointment.ListProviderSchedule) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: scheduleUC}
}

// GET /schedule?date=YYYY-MM-DD
func (h *ScheduleHandler) Get(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	out, err := h.scheduleUC.Execute(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

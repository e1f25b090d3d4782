package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/user"
)

type ProviderHandler struct {
	listUC         *ucUser.ListProviders
	availabilityUC *ucAppointment.GetAvailability
}

func NewProviderHandler(
	listUC *ucUser.ListProviders,
	availabilityUC *ucAppointment.GetAvailability,
) *ProviderHandler {
	return &ProviderHandler{
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// GET /providers
func (h *ProviderHandler) List(c *gin.Context) {
	out, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

// GET /providers/:providerId/available?date=YYYY-MM-DD
func (h *ProviderHandler) Availability(c *gin.Context) {
	providerID, ok := uintParam(c, "providerId")
	if !ok {
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), providerID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, slots)
}

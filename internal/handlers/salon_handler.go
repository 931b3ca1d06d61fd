package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salonq/internal/usecase/appointment"
	ucSalon "github.com/BruksfildServices01/salonq/internal/usecase/salon"
)

// SalonHandler serves the public catalog screens.
type SalonHandler struct {
	list  *ucSalon.ListSalons
	get   *ucSalon.GetSalon
	slots *ucAppointment.GetAvailability
	log   *zap.Logger
}

func NewSalonHandler(
	list *ucSalon.ListSalons,
	get *ucSalon.GetSalon,
	slots *ucAppointment.GetAvailability,
	log *zap.Logger,
) *SalonHandler {
	return &SalonHandler{list: list, get: get, slots: slots, log: log}
}

func (h *SalonHandler) List(c *gin.Context) {
	salons, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.List(c, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, s)
}

func (h *SalonHandler) Slots(c *gin.Context) {
	slots, err := h.slots.Execute(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.List(c, slots)
}

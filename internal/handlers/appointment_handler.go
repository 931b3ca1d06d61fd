package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/httpresp"
	"github.com/BruksfildServices01/salonq/internal/models"
	ucAppointment "github.com/BruksfildServices01/salonq/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	fetchUC      *ucAppointment.FetchAppointments
	getUC        *ucAppointment.GetAppointment
	historyUC    *ucAppointment.ListHistory
	bookUC       *ucAppointment.BookAppointment
	cancelUC     *ucAppointment.CancelAppointment
	addServiceUC *ucAppointment.AddServiceToAppointment
	log          *zap.Logger
}

func NewAppointmentHandler(
	fetchUC *ucAppointment.FetchAppointments,
	getUC *ucAppointment.GetAppointment,
	historyUC *ucAppointment.ListHistory,
	bookUC *ucAppointment.BookAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	addServiceUC *ucAppointment.AddServiceToAppointment,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		fetchUC:      fetchUC,
		getUC:        getUC,
		historyUC:    historyUC,
		bookUC:       bookUC,
		cancelUC:     cancelUC,
		addServiceUC: addServiceUC,
		log:          log,
	}
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.fetchUC.Execute(c.Request.Context(), userID(c))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) History(c *gin.Context) {
	out, err := h.historyUC.Execute(c.Request.Context(), userID(c), ucAppointment.HistoryFilter{
		Status: c.Query("status"),
	})
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// WRITE
// ======================================================

// Book accepts a full appointment payload. The customer is always the
// caller.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var payload models.Appointment
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	payload.CustomerID = userID(c)

	ap, err := h.bookUC.Execute(c.Request.Context(), &payload)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	if ap == nil {
		httpresp.NoContent(c)
		return
	}
	httpresp.OK(c, ap)
}

type AddServiceRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

func (h *AppointmentHandler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.addServiceUC.Execute(c.Request.Context(), userID(c), c.Param("id"), req.ServiceID)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, ap)
}

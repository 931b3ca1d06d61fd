package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salonq/internal/usecase/appointment"
)

// BookingHandler exposes the step-by-step booking draft.
type BookingHandler struct {
	drafts *ucAppointment.BookingDraft
	log    *zap.Logger
}

func NewBookingHandler(drafts *ucAppointment.BookingDraft, log *zap.Logger) *BookingHandler {
	return &BookingHandler{drafts: drafts, log: log}
}

type BeginBookingRequest struct {
	SalonID string `json:"salonId" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SelectTimeRequest struct {
	SlotID string `json:"slotId" binding:"required"`
}

type SetProviderRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type SetPaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

func (h *BookingHandler) respond(c *gin.Context, v *ucAppointment.DraftView, err error) {
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, v)
}

func (h *BookingHandler) Begin(c *gin.Context) {
	var req BeginBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	v, err := h.drafts.Begin(c.Request.Context(), userID(c), req.SalonID)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.Created(c, v)
}

func (h *BookingHandler) Get(c *gin.Context) {
	v, err := h.drafts.Get(c.Request.Context(), userID(c))
	h.respond(c, v, err)
}

func (h *BookingHandler) Discard(c *gin.Context) {
	h.drafts.Discard(c.Request.Context(), userID(c))
	httpresp.NoContent(c)
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	v, err := h.drafts.SelectDate(c.Request.Context(), userID(c), req.Date)
	h.respond(c, v, err)
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	var req SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	v, err := h.drafts.SelectTime(c.Request.Context(), userID(c), req.SlotID)
	h.respond(c, v, err)
}

func (h *BookingHandler) SetProvider(c *gin.Context) {
	var req SetProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	v, err := h.drafts.SetProvider(c.Request.Context(), userID(c), req.EmployeeID)
	h.respond(c, v, err)
}

func (h *BookingHandler) SetPaymentMethod(c *gin.Context) {
	var req SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	v, err := h.drafts.SetPaymentMethod(c.Request.Context(), userID(c), req.PaymentMethod)
	h.respond(c, v, err)
}

func (h *BookingHandler) ToggleService(c *gin.Context) {
	v, err := h.drafts.ToggleService(c.Request.Context(), userID(c), c.Param("serviceId"))
	h.respond(c, v, err)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	ap, err := h.drafts.Confirm(c.Request.Context(), userID(c))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.Created(c, ap)
}

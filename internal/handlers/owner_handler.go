package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/httpresp"
	ucSalon "github.com/BruksfildServices01/salonq/internal/usecase/salon"
)

// OwnerHandler manages the caller's own salon. Routes sit behind
// RequireOwner, so the token always carries a salon id.
type OwnerHandler struct {
	manage *ucSalon.Manage
	log    *zap.Logger
}

func NewOwnerHandler(manage *ucSalon.Manage, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{manage: manage, log: log}
}

type UpdateSalonRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	OpeningTime *string `json:"openingTime"`
	ClosingTime *string `json:"closingTime"`
}

type AddEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

func (h *OwnerHandler) GetSalon(c *gin.Context) {
	s, err := h.manage.Get(c.Request.Context(), userID(c), salonID(c))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, s)
}

func (h *OwnerHandler) UpdateSalon(c *gin.Context) {
	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.manage.Update(c.Request.Context(), userID(c), salonID(c), ucSalon.UpdateSalonInput{
		Name:        req.Name,
		Address:     req.Address,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, s)
}

func (h *OwnerHandler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	e, err := h.manage.AddEmployee(c.Request.Context(), userID(c), salonID(c), req.Name, req.MobileNumber)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.Created(c, e)
}

func (h *OwnerHandler) RemoveEmployee(c *gin.Context) {
	if err := h.manage.RemoveEmployee(c.Request.Context(), userID(c), salonID(c), c.Param("employeeId")); err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.NoContent(c)
}

// UploadPhoto takes a multipart form with a single "photo" file.
func (h *OwnerHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "photo_required", "Attach an image in the \"photo\" field.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "photo_unreadable", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, ucSalon.MaxPhotoBytes+1))
	if err != nil {
		httperr.BadRequest(c, "photo_unreadable", err.Error())
		return
	}

	url, err := h.manage.UploadPhoto(c.Request.Context(), userID(c), salonID(c), http.DetectContentType(data), data)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.Created(c, gin.H{"url": url})
}

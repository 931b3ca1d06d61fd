package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/domain/user"
	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/httpresp"
	"github.com/BruksfildServices01/salonq/internal/middleware"
	"github.com/BruksfildServices01/salonq/internal/usecase/auth"
)

type MeHandler struct {
	users         user.Repository
	updateProfile *auth.UpdateProfile
	log           *zap.Logger
}

func NewMeHandler(users user.Repository, updateProfile *auth.UpdateProfile, log *zap.Logger) *MeHandler {
	return &MeHandler{users: users, updateProfile: updateProfile, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), userID(c))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, u)
}

type updateMeRequest struct {
	Name         *string `json:"name"`
	MobileNumber *string `json:"mobileNumber"`
	Gender       *string `json:"gender"`
}

// UpdateMe edits the caller's profile. The device header is optional here;
// when present, the saved session for that device is refreshed.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	u, err := h.updateProfile.Execute(
		c.Request.Context(),
		userID(c),
		c.GetHeader(middleware.HeaderDeviceID),
		auth.ProfileInput{
			Name:         req.Name,
			MobileNumber: req.MobileNumber,
			Gender:       req.Gender,
		},
	)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, u)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salonq/internal/httperr"
	"github.com/BruksfildServices01/salonq/internal/httpresp"
	"github.com/BruksfildServices01/salonq/internal/usecase/auth"
)

type AuthHandler struct {
	requestOTP  *auth.RequestOTP
	register    *auth.Register
	login       *auth.Login
	loadSession *auth.LoadSession
	logout      *auth.Logout
	log         *zap.Logger
}

func NewAuthHandler(
	requestOTP *auth.RequestOTP,
	register *auth.Register,
	login *auth.Login,
	loadSession *auth.LoadSession,
	logout *auth.Logout,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		requestOTP:  requestOTP,
		register:    register,
		login:       login,
		loadSession: loadSession,
		logout:      logout,
		log:         log,
	}
}

// --------- Requests ---------

type OTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

type StylistRequest struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
}

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Gender       string `json:"gender"`
	UserType     string `json:"userType" binding:"required"`
	OTP          string `json:"otp" binding:"required"`

	SalonName string           `json:"salonName"`
	Address   string           `json:"address"`
	Stylists  []StylistRequest `json:"stylists"`
}

type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.requestOTP.Execute(c.Request.Context(), req.MobileNumber); err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "otp_sent"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := auth.RegisterInput{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Gender:       req.Gender,
		UserType:     req.UserType,
		OTP:          req.OTP,
		DeviceID:     deviceID(c),
		SalonName:    req.SalonName,
		Address:      req.Address,
	}
	for _, s := range req.Stylists {
		in.Stylists = append(in.Stylists, auth.StylistInput{Name: s.Name, MobileNumber: s.MobileNumber})
	}

	res, err := h.register.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.login.Execute(c.Request.Context(), auth.LoginInput{
		MobileNumber: req.MobileNumber,
		OTP:          req.OTP,
		DeviceID:     deviceID(c),
	})
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.OK(c, res)
}

// Session restores the record saved on this device for the token's user.
func (h *AuthHandler) Session(c *gin.Context) {
	s, err := h.loadSession.Execute(c.Request.Context(), deviceID(c), userID(c))
	if err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	if s == nil {
		httperr.NotFound(c, "no_session", "No saved session on this device.")
		return
	}
	httpresp.OK(c, s)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), deviceID(c)); err != nil {
		httperr.FromError(c, err, h.log)
		return
	}
	httpresp.NoContent(c)
}

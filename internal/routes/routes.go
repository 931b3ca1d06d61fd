package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/audit"
	"github.com/BruksfildServices01/salonq/internal/blobstore"
	"github.com/BruksfildServices01/salonq/internal/config"
	domain "github.com/BruksfildServices01/salonq/internal/domain/appointment"
	"github.com/BruksfildServices01/salonq/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salonq/internal/infra/repository"
	"github.com/BruksfildServices01/salonq/internal/metrics"
	"github.com/BruksfildServices01/salonq/internal/middleware"
	"github.com/BruksfildServices01/salonq/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salonq/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/salonq/internal/usecase/auth"
	ucSalon "github.com/BruksfildServices01/salonq/internal/usecase/salon"
)

// Infra holds the process-wide singletons built in main.
type Infra struct {
	DB      *gorm.DB
	Blobs   blobstore.Store
	Audit   *audit.Dispatcher
	Metrics *metrics.Collector
	Photos  ucSalon.PhotoStorage
	Clock   *timezone.Clock
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, infra Infra, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(infra.Log))
	if infra.Metrics != nil {
		r.Use(middleware.Metrics(infra.Metrics))
	}
	r.Use(middleware.Recovery(infra.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentBlobRepository(infra.Blobs, cfg.SimulatedLatency)
	catalogRepo := infraRepo.NewCatalogGormRepository(infra.DB)
	userRepo := infraRepo.NewUserGormRepository(infra.DB)
	sessionRepo := infraRepo.NewSessionBlobRepository(infra.Blobs)
	otpRepo := infraRepo.NewOTPBlobRepository(infra.Blobs)

	var oracle domain.AvailabilityOracle = domain.NewBookedOracle(appointmentRepo, infra.Clock)
	if cfg.AvailabilityMode == config.AvailabilityRandom {
		oracle = domain.NewRandomOracle(cfg.AvailabilityRate)
	}

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		catalogRepo,
		infra.Clock,
		infra.Audit,
		infra.Metrics,
		infra.Log,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		infra.Clock,
		infra.Audit,
		infra.Metrics,
		infra.Log,
		cfg.CancelMissingIsNoop,
	)

	addServiceUC := ucAppointment.NewAddServiceToAppointment(
		appointmentRepo,
		catalogRepo,
		infra.Clock,
		infra.Audit,
		infra.Metrics,
		infra.Log,
	)

	draftUC := ucAppointment.NewBookingDraft(
		domain.NewDraftRegistry(),
		catalogRepo,
		oracle,
		infra.Clock,
		bookUC,
		infra.Log,
	)

	// ======================================================
	// USE CASES: AUTH
	// ======================================================
	verifier := ucAuth.NewOTPVerifier(otpRepo, infra.Clock)
	tokens := ucAuth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, infra.Clock)

	requestOTPUC := ucAuth.NewRequestOTP(otpRepo, ucAuth.NewLogSender(infra.Log), infra.Clock, cfg.OTPTTL, infra.Log)
	registerUC := ucAuth.NewRegister(userRepo, verifier, tokens, sessionRepo, infra.Clock, infra.Log)
	loginUC := ucAuth.NewLogin(userRepo, verifier, tokens, sessionRepo, infra.Clock, infra.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(infra.DB, infra.Blobs)

	authHandler := handlers.NewAuthHandler(
		requestOTPUC,
		registerUC,
		loginUC,
		ucAuth.NewLoadSession(sessionRepo),
		ucAuth.NewLogout(sessionRepo),
		infra.Log,
	)

	meHandler := handlers.NewMeHandler(
		userRepo,
		ucAuth.NewUpdateProfile(userRepo, sessionRepo, infra.Log),
		infra.Log,
	)

	salonHandler := handlers.NewSalonHandler(
		ucSalon.NewListSalons(catalogRepo),
		ucSalon.NewGetSalon(catalogRepo),
		ucAppointment.NewGetAvailability(catalogRepo, oracle, infra.Clock),
		infra.Log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewFetchAppointments(appointmentRepo, infra.Log),
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewListHistory(appointmentRepo, infra.Clock),
		bookUC,
		cancelUC,
		addServiceUC,
		infra.Log,
	)

	bookingHandler := handlers.NewBookingHandler(draftUC, infra.Log)

	ownerHandler := handlers.NewOwnerHandler(
		ucSalon.NewManage(catalogRepo, infra.Photos, infra.Audit, infra.Log),
		infra.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(infra.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	if infra.Metrics != nil {
		r.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		{
			authAPI.POST("/otp", authHandler.RequestOTP)

			device := authAPI.Group("/")
			device.Use(middleware.DeviceScope())
			{
				device.POST("/register", authHandler.Register)
				device.POST("/login", authHandler.Login)
				device.POST("/logout", authHandler.Logout)
				device.GET("/session", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.Session)
			}
		}

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/salons", salonHandler.List)
		api.GET("/salons/:id", salonHandler.Get)
		api.GET("/employees/:employeeId/slots", salonHandler.Slots)

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			me.GET("", meHandler.GetMe)
			me.PATCH("", meHandler.UpdateMe)

			me.GET("/appointments", appointmentHandler.List)
			me.GET("/appointments/history", appointmentHandler.History)
			me.GET("/appointments/:id", appointmentHandler.Get)
			me.POST("/appointments", appointmentHandler.Book)
			me.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			me.POST("/appointments/:id/services", appointmentHandler.AddService)

			me.POST("/booking", bookingHandler.Begin)
			me.GET("/booking", bookingHandler.Get)
			me.DELETE("/booking", bookingHandler.Discard)
			me.PUT("/booking/date", bookingHandler.SelectDate)
			me.PUT("/booking/time", bookingHandler.SelectTime)
			me.PUT("/booking/provider", bookingHandler.SetProvider)
			me.PUT("/booking/payment-method", bookingHandler.SetPaymentMethod)
			me.POST("/booking/services/:serviceId/toggle", bookingHandler.ToggleService)
			me.POST("/booking/confirm", bookingHandler.Confirm)
		}

		// ------------------------------
		// OWNER
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireOwner())
		{
			owner.GET("/salon", ownerHandler.GetSalon)
			owner.PATCH("/salon", ownerHandler.UpdateSalon)
			owner.POST("/salon/employees", ownerHandler.AddEmployee)
			owner.DELETE("/salon/employees/:employeeId", ownerHandler.RemoveEmployee)
			owner.POST("/salon/photos", ownerHandler.UploadPhoto)

			owner.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-crm/internal/audit"
	"github.com/BruksfildServices01/barber-crm/internal/cache"
	"github.com/BruksfildServices01/barber-crm/internal/config"
	"github.com/BruksfildServices01/barber-crm/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-crm/internal/handlers"
	"github.com/BruksfildServices01/barber-crm/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/barber-crm/internal/infra/repository"
	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	"github.com/BruksfildServices01/barber-crm/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barber-crm/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/barber-crm/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/barber-crm/internal/usecase/dashboard"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) error {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	catalog, err := schedule.NewSlotCatalog(schedule.SlotConfig{
		Open:        cfg.SlotOpen,
		Close:       cfg.SlotClose,
		StepMinutes: cfg.SlotStepMinutes,
	})
	if err != nil {
		return err
	}

	clock := schedule.NewSystemClock()

	clientRepo := infraRepo.NewClientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	denylist := cache.NewTokenDenylist(rdb)
	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createClientUC := ucClient.NewCreateClient(clientRepo, auditDispatcher)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditDispatcher)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditDispatcher)
	searchClientsUC := ucClient.NewSearchClients(clientRepo)
	recentClientsUC := ucClient.NewRecentClients(clientRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo, clientRepo, catalog, clock, auditDispatcher,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo, clientRepo, catalog, clock, auditDispatcher,
	)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo, auditDispatcher,
	)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listUpcomingUC := ucAppointment.NewListUpcomingAppointments(
		appointmentRepo, clock, cfg.UpcomingIncludesToday,
	)

	dashboardStatsUC := ucDashboard.NewDashboardStats(
		clientRepo, appointmentRepo, clock, log,
	)
	monthlyStatsUC := ucDashboard.NewMonthlyStats(appointmentRepo, clock, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	meHandler := handlers.NewMeHandler(db, uploader)
	clientHandler := handlers.NewClientHandler(
		createClientUC, updateClientUC, deleteClientUC,
		searchClientsUC, recentClientsUC,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC, updateAppointmentUC, deleteAppointmentUC,
		getAppointmentUC, listByDateUC, listUpcomingUC,
	)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStatsUC, monthlyStatsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/me/slots", func(c *gin.Context) {
				httpresp.OK(c, gin.H{"slots": catalog.Slots()})
			})

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/recent", clientHandler.Recent)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/upcoming", appointmentHandler.ListUpcoming)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/dashboard/stats", dashboardHandler.Stats)
			secured.GET("/me/dashboard/monthly", dashboardHandler.Monthly)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}

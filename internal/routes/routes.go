package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/GabrielAraujo027/Kalenner/internal/audit"
	"github.com/GabrielAraujo027/Kalenner/internal/config"
	"github.com/GabrielAraujo027/Kalenner/internal/handlers"
	"github.com/GabrielAraujo027/Kalenner/internal/infra/repository"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/observability"
	"github.com/GabrielAraujo027/Kalenner/internal/usecase/appointment"
)

// Setup wires repositories, use cases and handlers onto the router.
// rdb may be nil; the auth rate limiter then fails open.
func Setup(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	metrics *observability.Metrics,
) *audit.Dispatcher {

	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	createUC := appointment.NewCreate(repo, dispatcher)
	updateUC := appointment.NewUpdate(repo, dispatcher)
	patchUC := appointment.NewPatchStatus(repo, dispatcher)
	listUC := appointment.NewList(repo)
	getUC := appointment.NewGet(repo)
	deleteUC := appointment.NewDelete(repo, dispatcher)

	authHandler := handlers.NewAuthHandler(db, cfg)
	companyHandler := handlers.NewCompanyHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	linkHandler := handlers.NewProfessionalServiceHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC, updateUC, patchUC, listUC, getUC, deleteUC,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// -------- Public --------
	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimiter(rdb, 20, time.Minute))
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/register", authHandler.Register)
		auth.POST("/register-user-company", authHandler.RegisterUserCompany)
		auth.POST("/login", authHandler.Login)
	}

	r.GET("/api/companies/:slug", companyHandler.GetBySlug)

	// -------- Authenticated --------
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/companies", companyHandler.Get)
		api.PATCH("/companies", middleware.RequireAdmin(), companyHandler.Update)

		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/:id", serviceHandler.GetByID)
			services.POST("", middleware.RequireAdmin(), serviceHandler.Create)
			services.PATCH("/:id", middleware.RequireAdmin(), serviceHandler.Update)
			services.DELETE("/:id", middleware.RequireAdmin(), serviceHandler.Delete)
		}

		professionals := api.Group("/professionals")
		{
			professionals.GET("", professionalHandler.List)
			professionals.GET("/:id", professionalHandler.GetByID)
			professionals.POST("", middleware.RequireAdmin(), professionalHandler.Create)
			professionals.PATCH("/:id", middleware.RequireAdmin(), professionalHandler.Update)
			professionals.DELETE("/:id", middleware.RequireAdmin(), professionalHandler.Delete)
		}

		links := api.Group("/professional-services")
		{
			links.GET("/professional/:professionalId", linkHandler.ListByProfessional)
			links.GET("/service/:serviceId", linkHandler.ListByService)
			links.POST("/professional/link", middleware.RequireAdmin(), linkHandler.LinkServicesToProfessional)
			links.POST("/service/link", middleware.RequireAdmin(), linkHandler.LinkProfessionalsToService)
			links.DELETE("/:id", middleware.RequireAdmin(), linkHandler.DeleteLink)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.GET("/:id", appointmentHandler.GetByID)
			appointments.POST("", appointmentHandler.Create)
			appointments.PUT("/:id", appointmentHandler.Update)
			appointments.PATCH("/:id/status", appointmentHandler.PatchStatus)
			appointments.DELETE("/:id", middleware.RequireAdmin(), appointmentHandler.Delete)
		}
	}

	return dispatcher
}

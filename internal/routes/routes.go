package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
	ucBlock "github.com/BruksfildServices01/salon-scheduler/internal/usecase/block"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availCache := cache.NewAvailability(rdb, log)

	// ======================================================
	// 🧠 USE CASES — AVAILABILITY
	// ======================================================
	salonSlotsUC := ucAvailability.NewGetSalonSlots(scheduleRepo, log)
	artistSlotsUC := ucAvailability.NewGetArtistSlots(scheduleRepo, log)
	checkRangeUC := ucAvailability.NewCheckRange(scheduleRepo)

	// ======================================================
	// 🧠 USE CASES — BLOCKS
	// ======================================================
	createBlockUC := ucBlock.NewCreateBlock(scheduleRepo, auditDispatcher)
	updateBlockUC := ucBlock.NewUpdateBlock(scheduleRepo, auditDispatcher)
	deleteBlockUC := ucBlock.NewDeleteBlock(scheduleRepo, auditDispatcher)
	listBlocksUC := ucBlock.NewListBlocks(scheduleRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	artistHandler := handlers.NewArtistHandler(db, auditDispatcher)

	openingHoursHandler := handlers.NewOpeningHoursHandler(db, auditDispatcher, availCache)

	availabilityHandler := handlers.NewAvailabilityHandler(
		db,
		salonSlotsUC,
		artistSlotsUC,
		availCache,
	)

	blockHandler := handlers.NewBlockHandler(
		createBlockUC,
		updateBlockUC,
		deleteBlockUC,
		listBlocksUC,
		checkRangeUC,
		availCache,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", availabilityHandler.ForClient)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/artists", artistHandler.List)
			secured.POST("/me/artists", artistHandler.Create)

			secured.GET("/me/opening-hours", openingHoursHandler.GetSalonHours)
			secured.PUT("/me/opening-hours", openingHoursHandler.UpdateSalonHours)
			secured.GET("/me/artists/:id/opening-hours", openingHoursHandler.GetArtistHours)
			secured.PUT("/me/artists/:id/opening-hours", openingHoursHandler.UpdateArtistHours)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.GET("/me/availability", availabilityHandler.ForOwner)

			// ------------------------------
			// BLOCKS
			// ------------------------------
			secured.GET("/me/blocks", blockHandler.List)
			secured.POST("/me/blocks", blockHandler.Create)
			secured.GET("/me/blocks/check", blockHandler.Check)
			secured.PATCH("/me/blocks/:id", blockHandler.Update)
			secured.DELETE("/me/blocks/:id", blockHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/audit"
	"github.com/navalha-studio/booking-api/internal/cache"
	"github.com/navalha-studio/booking-api/internal/config"
	"github.com/navalha-studio/booking-api/internal/handlers"
	"github.com/navalha-studio/booking-api/internal/media"
	"github.com/navalha-studio/booking-api/internal/middleware"
	"github.com/navalha-studio/booking-api/internal/notify"
	"github.com/navalha-studio/booking-api/internal/payment"
	repository "github.com/navalha-studio/booking-api/internal/infra/repository"
	ucschedule "github.com/navalha-studio/booking-api/internal/usecase/schedule"
)

// RegisterRoutes monta toda a árvore de rotas e a cadeia de
// dependências: repositório -> use cases -> handlers. O mailer é
// compartilhado com o cron de lembretes, por isso vem de fora.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer *notify.Mailer) {

	// ======================================================
	// INFRA
	// ======================================================

	repo := repository.NewScheduleGormRepository(db)

	// Sem endereço configurado o construtor devolve nil e o cache
	// fica desligado.
	slotCache := cache.NewSlotCache(cfg.RedisAddr, cfg.SlotCacheTTL)

	notifier := notify.NewNotifier(db)
	uploader := media.NewUploader(cfg)

	var deposits *payment.DepositClient
	if cfg.MPAccessToken != "" {
		client, err := payment.NewDepositClient(cfg.MPAccessToken)
		if err != nil {
			log.Printf("mercadopago indisponível: %v", err)
		} else {
			deposits = client
		}
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// USE CASES
	// ======================================================

	getSlots := ucschedule.NewGetAvailableSlots(repo, slotCache)
	createReservation := ucschedule.NewCreateReservation(
		repo, notifier, mailer, auditDispatcher, slotCache,
		time.Weekday(cfg.StudentServiceWeekday),
	)
	cancelReservation := ucschedule.NewCancelReservation(repo, auditDispatcher, slotCache)
	completeReservation := ucschedule.NewCompleteReservation(repo, auditDispatcher)
	listReservations := ucschedule.NewListReservations(repo)
	createUnavailability := ucschedule.NewCreateUnavailability(repo, notifier, auditDispatcher, slotCache)
	updateUnavailabilityGroup := ucschedule.NewUpdateUnavailabilityGroup(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(db, getSlots)
	reservationHandler := handlers.NewReservationHandler(
		db, createReservation, cancelReservation, completeReservation,
		listReservations, deposits,
	)
	unavailabilityHandler := handlers.NewUnavailabilityHandler(
		db, createUnavailability, updateUnavailabilityGroup, repo,
	)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	shopHandler := handlers.NewShopHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	mediaHandler := handlers.NewMediaHandler(uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/barbeiros", barberHandler.ListPublic)
	r.GET("/servicos", serviceHandler.ListPublic)
	r.GET("/horarios-disponiveis", availabilityHandler.Get)

	r.POST("/reservas", reservationHandler.Create)
	r.GET("/reservas/consulta", reservationHandler.Consult)

	// ======================================================
	// ROTAS PROTEGIDAS (painel administrativo)
	// ======================================================

	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/me", shopHandler.Me)
		admin.GET("/barbearia", shopHandler.Get)
		admin.PATCH("/barbearia", shopHandler.Update)

		admin.GET("/reservas", reservationHandler.List)
		admin.PUT("/reservas/:id", reservationHandler.Update)
		admin.DELETE("/reservas/:id", reservationHandler.Delete)
		admin.POST("/reservas/:id/sinal", reservationHandler.CreateDeposit)

		admin.POST("/horarios_indisponiveis", unavailabilityHandler.Create)
		admin.GET("/horarios_indisponiveis", unavailabilityHandler.List)
		admin.PUT("/horarios_indisponiveis/group/:groupId", unavailabilityHandler.UpdateGroup)
		admin.DELETE("/horarios_indisponiveis/:id", unavailabilityHandler.Delete)

		admin.GET("/admin/barbeiros", barberHandler.ListAdmin)
		admin.POST("/admin/barbeiros", barberHandler.Create)
		admin.PUT("/admin/barbeiros/:id", barberHandler.Update)
		admin.DELETE("/admin/barbeiros/:id", barberHandler.Delete)

		admin.GET("/admin/servicos", serviceHandler.ListAdmin)
		admin.POST("/admin/servicos", serviceHandler.Create)
		admin.PUT("/admin/servicos/:id", serviceHandler.Update)
		admin.DELETE("/admin/servicos/:id", serviceHandler.Delete)

		admin.GET("/clientes", clientHandler.List)

		admin.GET("/notifications", notificationHandler.List)
		admin.GET("/notifications/stream", notificationHandler.Stream)
		admin.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

		admin.POST("/media", mediaHandler.Upload)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}

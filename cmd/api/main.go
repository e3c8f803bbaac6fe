package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navalha-studio/booking-api/internal/config"
	"github.com/navalha-studio/booking-api/internal/db"
	"github.com/navalha-studio/booking-api/internal/middleware"
	"github.com/navalha-studio/booking-api/internal/notify"
	"github.com/navalha-studio/booking-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	mailer := notify.NewMailer(cfg)

	routes.RegisterRoutes(r, database, cfg, mailer)

	// Cron de lembretes: e-mail ~1h antes de cada reserva confirmada.
	reminder := notify.NewReminder(database, mailer)
	reminder.Start()

	log.Println("API de agendamento em", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}

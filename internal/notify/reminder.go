package notify

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/navalha-studio/booking-api/internal/domain/schedule"
	"github.com/navalha-studio/booking-api/internal/models"
)

// Reminder roda a cada minuto e lembra clientes de reservas confirmadas
// que começam em cerca de uma hora.
type Reminder struct {
	db     *gorm.DB
	mailer *Mailer
}

func NewReminder(db *gorm.DB, mailer *Mailer) *Reminder {
	return &Reminder{db: db, mailer: mailer}
}

func (r *Reminder) Start() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", r.run); err != nil {
		log.Fatalf("failed to schedule reminder job: %v", err)
	}
	c.Start()
	log.Println("reminder job scheduled")
	return c
}

func (r *Reminder) run() {
	if !r.mailer.Enabled() {
		return
	}

	now := time.Now()
	windowStart := now.Add(55 * time.Minute)
	windowEnd := now.Add(65 * time.Minute)

	var reservations []models.Reservation
	err := r.db.
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		Where(
			"status = ? AND start_time BETWEEN ? AND ? AND reminder_sent_at IS NULL",
			string(domain.StatusConfirmed),
			windowStart,
			windowEnd,
		).
		Find(&reservations).Error
	if err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	for i := range reservations {
		res := &reservations[i]
		if err := r.sendReminder(res); err != nil {
			log.Printf("reminder for reservation %d failed: %v", res.ID, err)
			continue
		}

		sentAt := time.Now()
		if err := r.db.Model(res).Update("reminder_sent_at", sentAt).Error; err != nil {
			log.Printf("reminder mark for reservation %d failed: %v", res.ID, err)
		}
	}
}

func (r *Reminder) sendReminder(res *models.Reservation) error {
	subject := "Lembrete: seu horário é daqui a pouco"
	body := fmt.Sprintf(`
        <p>Olá %s,</p>
        <p>Passando para lembrar do seu horário na barbearia.</p>
        <ul>
            <li><strong>Serviço:</strong> %s</li>
            <li><strong>Barbeiro:</strong> %s</li>
            <li><strong>Horário:</strong> %s</li>
        </ul>
        <p>Se precisar remarcar, fale com a gente.</p>
    `,
		res.Client.Name,
		res.Service.Name,
		res.Barber.Name,
		res.StartTime.Format("02/01/2006 15:04"),
	)

	return r.mailer.Send(res.Client.Email, subject, body)
}

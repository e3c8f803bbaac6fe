package notify

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/navalha-studio/booking-api/internal/models"
)

// Notifier grava linhas em notifications para o painel. Toda escrita é
// best-effort: falha é logada e nunca propaga para o chamador.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

func (n *Notifier) ReservationCreated(r *models.Reservation) {
	n.write(models.Notification{
		Type: models.NotificationReservationCreated,
		Message: fmt.Sprintf(
			"Nova reserva de %s em %s",
			r.Client.Name,
			r.StartTime.Format("2006-01-02 15:04:05"),
		),
		ReservationID: &r.ID,
	})
}

func (n *Notifier) ReservationCancelledByBlock(r *models.Reservation) {
	n.write(models.Notification{
		Type: models.NotificationReservationCancelled,
		Message: fmt.Sprintf(
			"Reserva de %s em %s cancelada por indisponibilidade",
			r.Client.Name,
			r.StartTime.Format("2006-01-02 15:04:05"),
		),
		ReservationID: &r.ID,
	})
}

func (n *Notifier) write(row models.Notification) {
	if n == nil {
		return
	}
	if err := n.db.Create(&row).Error; err != nil {
		log.Printf("notification write failed: %v", err)
	}
}

package models

import "time"

const (
	NotificationReservationCreated   = "reserva_criada"
	NotificationReservationCancelled = "reserva_cancelada"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type    string `gorm:"size:50;not null" json:"tipo"`
	Message string `gorm:"size:255" json:"mensagem"`

	ReservationID *uint `gorm:"column:reserva_id" json:"reserva_id"`

	Read bool `gorm:"default:false" json:"lida"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

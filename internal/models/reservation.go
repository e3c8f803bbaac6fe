package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"column:barbeiro_id;index" json:"barbeiro_id"`
	Barber   Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbeiro"`

	ServiceID uint    `gorm:"column:servico_id" json:"servico_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	ClientID uint   `gorm:"column:cliente_id" json:"cliente_id"`
	Client   Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	StartTime time.Time `gorm:"index" json:"data_hora"`

	Comment     string `gorm:"column:comentario;size:255" json:"comentario"`
	PrivateNote string `gorm:"column:observacao_interna;size:255" json:"observacao_interna"`

	Status string `gorm:"size:20;default:'confirmada'" json:"status"`

	CancelledAt    *time.Time `json:"cancelled_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	ReminderSentAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reservation) TableName() string { return "reservas" }

package models

import "time"

const (
	BlockTypeVacation = "ferias"
	BlockTypeBreak    = "pausa"
	BlockTypeOther    = "outro"
)

// UnavailabilityBlock é uma ocorrência concreta de indisponibilidade.
// Regras recorrentes são materializadas em uma linha por ocorrência;
// todas as linhas geradas por uma mesma regra compartilham o
// RecurrenceGroupID.
type UnavailabilityBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"column:barbeiro_id;index" json:"barbeiro_id"`
	Barber   Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbeiro"`

	StartTime time.Time `gorm:"index" json:"inicio"`
	EndTime   time.Time `json:"fim"`

	Type   string `gorm:"column:tipo;size:30" json:"tipo"`
	Reason string `gorm:"column:motivo;size:200" json:"motivo"`
	AllDay bool   `gorm:"column:dia_inteiro;default:false" json:"dia_inteiro"`

	Recurrence string `gorm:"column:repetir;size:10;default:'nao'" json:"repetir"`

	// Armazenado apenas como dado da regra; a expansão não consulta
	// este campo (o teto de um ano é incondicional).
	RecurrenceEndDate *time.Time `gorm:"column:repetir_ate" json:"repetir_ate"`

	RecurrenceGroupID string `gorm:"size:36;index" json:"recurrence_group_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UnavailabilityBlock) TableName() string { return "horarios_indisponiveis" }

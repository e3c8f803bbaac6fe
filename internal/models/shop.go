package models

import "time"

// Configuração única da barbearia (linha única, criada no bootstrap).
type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name              string `gorm:"size:100;not null" json:"nome"`
	Phone             string `gorm:"size:20" json:"telefone"`
	Address           string `gorm:"size:255" json:"endereco"`
	Timezone          string `gorm:"size:50" json:"timezone"`
	MinAdvanceMinutes int    `gorm:"default:120" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shop) TableName() string { return "barbearia" }

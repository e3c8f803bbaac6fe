package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"nome"`
	Description string  `gorm:"size:255" json:"descricao"`
	DurationMin int     `json:"duracao_min"`
	Price       float64 `json:"preco"`
	ImageURL    string  `gorm:"size:255" json:"imagem_url"`
	Active      bool    `gorm:"default:true" json:"ativo"`

	// Serviços de estudante só podem ser reservados no dia da semana
	// configurado pela barbearia.
	Student bool `gorm:"column:estudante;default:false" json:"estudante"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "servicos" }

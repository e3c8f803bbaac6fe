package models

import "time"

// Cliente simples, identificado pelo telefone dentro da barbearia.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"nome"`
	Phone string `gorm:"size:20;index" json:"telefone"`
	Email string `gorm:"size:100" json:"email"`

	// Credencial opcional para a área de consulta do cliente.
	PasswordHash string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clientes" }

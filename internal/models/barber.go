package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"nome"`
	Specialties string `gorm:"size:255" json:"especialidades"`
	AvatarURL   string `gorm:"size:255" json:"avatar_url"`
	Active      bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Barber) TableName() string { return "barbeiros" }

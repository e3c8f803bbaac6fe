package dto

import "time"

type ReservationListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"data_hora"`
	Status      string    `json:"status"`
	ClientName  string    `json:"cliente_nome"`
	ClientPhone string    `json:"cliente_telefone"`
	ServiceName string    `json:"servico_nome"`
	Comment     string    `json:"comentario"`
}

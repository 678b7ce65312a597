package models

import "time"

// Cliente da barbearia. O telefone é guardado já formatado para exibição.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

package entity

import "time"

// Customer cliente de la tienda. Email y Phone son únicos cuando están presentes.
type Customer struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}

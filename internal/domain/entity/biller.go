package entity

import "time"

// Biller usuario autenticado del punto de venta (cajero/facturador).
type Biller struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

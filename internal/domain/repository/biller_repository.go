package repository

import "github.com/kiranapos/pos-api/internal/domain/entity"

// BillerRepository define el puerto de persistencia para Biller (login y seed).
type BillerRepository interface {
	FindByUsername(username string) (*entity.Biller, error)
	Upsert(biller *entity.Biller) (*entity.Biller, error)
}

package repository

import "github.com/kiranapos/pos-api/internal/domain/entity"

// CustomerPatch campos actualizables de un cliente.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(customer *entity.Customer) error
	UpdatePartial(id string, patch CustomerPatch) (*entity.Customer, error)
	Delete(id string) error
}

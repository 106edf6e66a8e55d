package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/usecase"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

// Los repos de Postgres retornan (nil, nil) cuando el UPDATE no encuentra la
// fila; el caso de uso debe convertir ese nil en ErrNotFound, nunca
// dereferenciarlo. Estos fakes reproducen exactamente ese contrato.

type notFoundCategoryRepo struct{}

func (notFoundCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }
func (notFoundCategoryRepo) Create(*entity.Category) error     { return nil }
func (notFoundCategoryRepo) UpdatePartial(string, repository.CategoryPatch) (*entity.Category, error) {
	return nil, nil
}
func (notFoundCategoryRepo) Delete(string) error { return nil }

type notFoundUnitRepo struct{}

func (notFoundUnitRepo) List() ([]*entity.Unit, error) { return nil, nil }
func (notFoundUnitRepo) Create(*entity.Unit) error     { return nil }
func (notFoundUnitRepo) UpdatePartial(string, repository.UnitPatch) (*entity.Unit, error) {
	return nil, nil
}
func (notFoundUnitRepo) Delete(string) error { return nil }

type notFoundCustomerRepo struct{}

func (notFoundCustomerRepo) List() ([]*entity.Customer, error)          { return nil, nil }
func (notFoundCustomerRepo) GetByID(string) (*entity.Customer, error)   { return nil, nil }
func (notFoundCustomerRepo) Create(*entity.Customer) error              { return nil }
func (notFoundCustomerRepo) UpdatePartial(string, repository.CustomerPatch) (*entity.Customer, error) {
	return nil, nil
}
func (notFoundCustomerRepo) Delete(string) error { return nil }

type notFoundProductRepo struct{}

func (notFoundProductRepo) List() ([]*entity.ProductWithRefs, error)        { return nil, nil }
func (notFoundProductRepo) GetByID(string) (*entity.ProductWithRefs, error) { return nil, nil }
func (notFoundProductRepo) GetName(string) (string, error) {
	return "", domain.ErrProductNotFound
}
func (notFoundProductRepo) Create(*entity.Product) error { return nil }
func (notFoundProductRepo) UpdatePartial(string, repository.ProductPatch) (*entity.Product, error) {
	return nil, nil
}
func (notFoundProductRepo) Delete(string) error { return nil }

type notFoundExpenseCategoryRepo struct{}

func (notFoundExpenseCategoryRepo) List() ([]*entity.ExpenseCategory, error) { return nil, nil }
func (notFoundExpenseCategoryRepo) Create(*entity.ExpenseCategory) error     { return nil }
func (notFoundExpenseCategoryRepo) Update(string, string) (*entity.ExpenseCategory, error) {
	return nil, nil
}
func (notFoundExpenseCategoryRepo) Delete(string) error { return nil }

func TestCategoryUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(notFoundCategoryRepo{})

	var out *dto.CategoryResponse
	var err error
	require.NotPanics(t, func() {
		out, err = uc.Update("no-existe", dto.UpdateCategoryRequest{Name: strPtr("Lácteos")})
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnitUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewUnitUseCase(notFoundUnitRepo{})

	out, err := uc.Update("no-existe", dto.UpdateUnitRequest{UnitName: strPtr("kg")})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(notFoundCustomerRepo{})

	out, err := uc.Update("no-existe", dto.UpdateCustomerRequest{Name: strPtr("Ramesh")})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(notFoundProductRepo{}, nil, testLogger())

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("Arroz")})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseCategoryUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewExpenseCategoryUseCase(notFoundExpenseCategoryRepo{})

	out, err := uc.Update("no-existe", "Servicios")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

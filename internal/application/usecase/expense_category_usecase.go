package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

// ExpenseCategoryUseCase CRUD de categorías de gasto.
type ExpenseCategoryUseCase struct {
	repo repository.ExpenseCategoryRepository
}

// NewExpenseCategoryUseCase construye el caso de uso.
func NewExpenseCategoryUseCase(repo repository.ExpenseCategoryRepository) *ExpenseCategoryUseCase {
	return &ExpenseCategoryUseCase{repo: repo}
}

// List lista todas las categorías de gasto.
func (uc *ExpenseCategoryUseCase) List() ([]dto.ExpenseCategoryResponse, error) {
	cats, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseCategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.ExpenseCategoryResponse{ID: c.ID, CategoryName: c.CategoryName})
	}
	return out, nil
}

// Create registra una categoría de gasto nueva. El nombre es único.
func (uc *ExpenseCategoryUseCase) Create(in dto.CreateExpenseCategoryRequest) (*dto.ExpenseCategoryResponse, error) {
	if in.CategoryName == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	cat := &entity.ExpenseCategory{ID: uuid.NewString(), CategoryName: in.CategoryName}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return &dto.ExpenseCategoryResponse{ID: cat.ID, CategoryName: cat.CategoryName}, nil
}

// Update renombra la categoría.
func (uc *ExpenseCategoryUseCase) Update(id, categoryName string) (*dto.ExpenseCategoryResponse, error) {
	if categoryName == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	cat, err := uc.repo.Update(id, categoryName)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ExpenseCategoryResponse{ID: cat.ID, CategoryName: cat.CategoryName}, nil
}

// Delete elimina la categoría. Falla con ErrForeignKey si hay gastos asociados.
func (uc *ExpenseCategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

// UnitUseCase CRUD de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// List lista todas las unidades.
func (uc *UnitUseCase) List() ([]dto.UnitResponse, error) {
	units, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// Create registra una unidad nueva. Sin factor explícito se asume 1.
func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.UnitName == "" {
		return nil, fmt.Errorf("%w: el nombre de la unidad es obligatorio", domain.ErrInvalidInput)
	}
	factor := in.ConversionFactor
	if factor.IsZero() {
		factor = decimal.NewFromInt(1)
	}
	unit := &entity.Unit{
		ID:               uuid.NewString(),
		UnitName:         in.UnitName,
		ConversionFactor: factor,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	resp := toUnitResponse(unit)
	return &resp, nil
}

// Update aplica una actualización parcial.
func (uc *UnitUseCase) Update(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.UpdatePartial(id, repository.UnitPatch{
		UnitName:         in.UnitName,
		ConversionFactor: in.ConversionFactor,
	})
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUnitResponse(unit)
	return &resp, nil
}

// Delete elimina la unidad. Falla con ErrForeignKey si hay productos que la usan.
func (uc *UnitUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUnitResponse(u *entity.Unit) dto.UnitResponse {
	return dto.UnitResponse{ID: u.ID, UnitName: u.UnitName, ConversionFactor: u.ConversionFactor}
}

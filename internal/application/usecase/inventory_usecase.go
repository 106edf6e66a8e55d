package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

// InventoryUseCase consulta y ajuste de existencias.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List lista las existencias con el producto resuelto.
func (uc *InventoryUseCase) List() ([]dto.InventoryResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toInventoryResponse(it))
	}
	return out, nil
}

// Get retorna las existencias de un producto.
func (uc *InventoryUseCase) Get(productID string) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryResponse(item)
	return &resp, nil
}

// Upsert fija las existencias del producto: inserta la fila o reemplaza la
// existente. Idempotente para payloads idénticos.
func (uc *InventoryUseCase) Upsert(in dto.UpsertInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id es obligatorio", domain.ErrInvalidInput)
	}
	item := &entity.InventoryItem{
		InventoryID:   uuid.NewString(),
		ProductID:     in.ProductID,
		StockQuantity: in.StockQuantity,
		MinStockLevel: in.MinStockLevel,
		BatchNumber:   in.BatchNumber,
	}
	if in.ExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *in.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de vencimiento inválida %q", domain.ErrInvalidInput, *in.ExpiryDate)
		}
		item.ExpiryDate = &expiry
	}
	if _, err := uc.repo.Upsert(item); err != nil {
		return nil, err
	}
	return uc.Get(in.ProductID)
}

func toInventoryResponse(it *entity.InventoryWithProduct) dto.InventoryResponse {
	resp := dto.InventoryResponse{
		InventoryID:   it.InventoryID,
		ProductID:     it.ProductID,
		ProductName:   it.ProductName,
		UnitName:      it.UnitName,
		StockQuantity: it.StockQuantity,
		MinStockLevel: it.MinStockLevel,
		BatchNumber:   it.BatchNumber,
		LowStock:      it.LowStock(),
		LastUpdatedAt: it.LastUpdatedAt.Format(time.RFC3339),
	}
	if it.ExpiryDate != nil {
		s := it.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &s
	}
	return resp
}

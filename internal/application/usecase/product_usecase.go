package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// ProductUseCase CRUD de productos. El alta y la baja tocan también la fila
// de inventario, por eso corren dentro del runner transaccional.
type ProductUseCase struct {
	repo   repository.ProductRepository
	runner ProductTxRunner
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, runner ProductTxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, runner: runner, log: log}
}

// List lista el catálogo con referencias resueltas y stock actual.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Get retorna un producto por su id.
func (uc *ProductUseCase) Get(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Create registra el producto y su fila de inventario en cero, atómicamente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	product := &entity.Product{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		UnitID:       in.UnitID,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		MRP:          in.MRP,
		IsWeighted:   in.IsWeighted,
		Weight:       in.Weight,
		WeightUnitID: in.WeightUnitID,
		CreatedAt:    time.Now(),
	}
	err := uc.runner.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return invRepo.CreateZero(uuid.NewString(), product.ID)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("Producto creado")
	resp := toProductResponse(&entity.ProductWithRefs{Product: *product, StockQuantity: decimal.Zero})
	return &resp, nil
}

// Update aplica una actualización parcial.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.UpdatePartial(id, repository.ProductPatch{
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		UnitID:       in.UnitID,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		MRP:          in.MRP,
		IsWeighted:   in.IsWeighted,
		Weight:       in.Weight,
		WeightUnitID: in.WeightUnitID,
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.Get(product.ID)
}

// Delete elimina el producto junto con su fila de inventario. Las ventas
// históricas conservan el nombre denormalizado en sus líneas.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	err := uc.runner.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := invRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("Producto eliminado")
	return nil
}

func toProductResponse(p *entity.ProductWithRefs) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		UnitID:        p.UnitID,
		UnitName:      p.UnitName,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		MRP:           p.MRP,
		IsWeighted:    p.IsWeighted,
		Weight:        p.Weight,
		WeightUnitID:  p.WeightUnitID,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

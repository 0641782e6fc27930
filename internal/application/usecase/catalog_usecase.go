package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo: productos y sus variantes.
type CatalogUseCase struct {
	products repository.ProductRepository
	variants repository.VariantRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, variants repository.VariantRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, variants: variants}
}

// CreateProduct crea un producto del catálogo.
func (uc *CatalogUseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto; nil si no existe.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// UpdateProduct actualiza un producto (o su baja lógica).
func (uc *CatalogUseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListProducts lista productos activos.
func (uc *CatalogUseCase) ListProducts() ([]dto.ProductResponse, error) {
	list, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// CreateVariant crea una variante de un producto existente.
func (uc *CatalogUseCase) CreateVariant(in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, nil
	}
	now := time.Now()
	variant := &entity.ProductVariant{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		Brand:          in.Brand,
		Presentation:   in.Presentation,
		Unit:           in.Unit,
		ReferencePrice: in.ReferencePrice,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.variants.Create(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// GetVariant obtiene una variante; nil si no existe.
func (uc *CatalogUseCase) GetVariant(id string) (*dto.VariantResponse, error) {
	variant, err := uc.variants.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, nil
	}
	return toVariantResponse(variant), nil
}

// UpdateVariant actualiza una variante. Las variantes con movimientos solo
// admiten baja lógica; el producto al que pertenecen no cambia.
func (uc *CatalogUseCase) UpdateVariant(id string, in dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	variant, err := uc.variants.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, nil
	}
	if in.Brand != nil {
		variant.Brand = *in.Brand
	}
	if in.Presentation != nil {
		variant.Presentation = *in.Presentation
	}
	if in.Unit != nil {
		variant.Unit = *in.Unit
	}
	if in.ReferencePrice != nil {
		variant.ReferencePrice = *in.ReferencePrice
	}
	if in.Active != nil {
		variant.Active = *in.Active
	}
	variant.UpdatedAt = time.Now()
	if err := uc.variants.Update(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// ListVariants lista variantes activas, opcionalmente de un producto.
func (uc *CatalogUseCase) ListVariants(productID string) ([]dto.VariantResponse, error) {
	var list []*entity.ProductVariant
	var err error
	if productID != "" {
		list, err = uc.variants.ListActiveByProduct(productID)
	} else {
		list, err = uc.variants.ListActive()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVariantResponse(v))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toVariantResponse(v *entity.ProductVariant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:             v.ID,
		ProductID:      v.ProductID,
		Brand:          v.Brand,
		Presentation:   v.Presentation,
		Unit:           v.Unit,
		ReferencePrice: v.ReferencePrice,
		Active:         v.Active,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

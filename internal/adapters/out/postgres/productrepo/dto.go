// Package productrepo persists products with GORM.
package productrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table. Names are unique.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_name"`
	Quantity int             `gorm:"not null;index"`
	Price    decimal.Decimal `gorm:"type:numeric;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Quantity: p.Quantity(),
		Price:    p.Price(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Quantity, dto.Price)
}

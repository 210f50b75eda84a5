package productrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts the product, assigning a new identity when it has none.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	if p.ID().IsZero() {
		dto.ID = kernel.NewUUID().Bytes()
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, translateError(err, p.Name())
	}

	return toDomain(dto)
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormProductRepository) ListInStock(ctx context.Context) ([]*product.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("quantity > 0"))
}

// Update writes name, quantity and price. Zero quantities are written too.
func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.ID().Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":     dto.Name,
			"quantity": dto.Quantity,
			"price":    dto.Price,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, dto.Name)
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("product", p.ID().String())
	}

	return toDomain(dto)
}

func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *GormProductRepository) find(query *gorm.DB) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := query.Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// translateError turns a unique name violation into a validation error.
func translateError(err error, name string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewValidationErrorWithCause(
			fmt.Sprintf("product with name '%s' already exists", name),
			err,
		)
	}
	return err
}

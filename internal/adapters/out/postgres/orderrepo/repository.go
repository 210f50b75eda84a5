package orderrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its lines, assigning a new identity when it has none.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if aggregate.ID().IsZero() {
		dto.ID = kernel.NewUUID().Bytes()
		for idx := range dto.Items {
			dto.Items[idx].OrderID = dto.ID
		}
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update stores the order status. The lines written by Add are left as they are.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return r.Get(ctx, aggregate.ID())
}

// Get retrieves an order by ID together with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withItems(ctx))
}

func (r *GormOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).Where("status = ?", status.String()))
}

// Delete removes the order and its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return false, err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("created_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

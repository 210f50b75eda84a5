// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders live in the orders table and their lines in order_items. Each line
// keeps a copy of the product as it was when the line was created, so lines
// survive later catalog changes.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `gorm:"not null;index"`
	Status    string         `gorm:"type:varchar(16);not null;index"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line with the product snapshot columns.
// There is no foreign key to products: the snapshot stands on its own.
type OrderItemDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position        int             `gorm:"not null"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	ProductQuantity int             `gorm:"not null"`
	ProductPrice    decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity        int             `gorm:"not null"`
	PriceAtOrder    decimal.Decimal `gorm:"type:numeric;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain maps the aggregate with its lines. Timestamps are truncated to
// the microsecond precision PostgreSQL stores.
func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		ID:        o.ID().Bytes(),
		CreatedAt: o.CreatedAt().Truncate(time.Microsecond),
		Status:    o.Status().String(),
		Items:     make([]OrderItemDTO, 0, len(items)),
	}

	for idx, item := range items {
		snapshot := item.Product()
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:         dto.ID,
			Position:        idx,
			ProductID:       snapshot.ID().Bytes(),
			ProductName:     snapshot.Name(),
			ProductQuantity: snapshot.Quantity(),
			ProductPrice:    snapshot.Price(),
			Quantity:        item.Quantity(),
			PriceAtOrder:    item.PriceAtOrder(),
		})
	}

	return dto
}

// toDomain rebuilds the aggregate. Items must already be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, items, dto.CreatedAt.UTC(), status)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	snapshot, err := product.RestoreProduct(productID, dto.ProductName, dto.ProductQuantity, dto.ProductPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(snapshot.Snapshot(), dto.Quantity, dto.PriceAtOrder)
}

package order

import (
	"context"
	"errors"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		PlaceOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByNgo(ctx context.Context, ngoID string) ([]*entities.Order, error)
		GetOrdersByDonor(ctx context.Context, donorID string) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, order *entities.Order, from string, to string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// PlaceOrder reserves the listing and inserts the order in one transaction.
// The reservation is a conditional update, so of several concurrent callers
// only the first one to commit sees an affected row. Donor and amount are
// copied from the reserved row.
func (r *orderRepository) PlaceOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.FoodListing{}).
			Where("id = ? AND status = ?", order.FoodID, domain.FoodStatusAvailable).
			Update("status", domain.FoodStatusReserved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFoodNotAvailable
		}

		var food entities.FoodListing
		if err := tx.Where("id = ?", order.FoodID).First(&food).Error; err != nil {
			return err
		}
		order.DonorID = food.DonorID
		order.Amount = food.Price

		if err := tx.Create(order).Error; err != nil {
			return err
		}
		food.Status = domain.FoodStatusReserved
		order.Food = &food
		return nil
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Donor").
		Preload("Ngo").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByNgo(ctx context.Context, ngoID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Donor").
		Where("ngo_id = ?", ngoID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrdersByDonor(ctx context.Context, donorID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Ngo").
		Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves the order from one status to the next. Delivery
// also marks the listing collected in the same transaction.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, order *entities.Order, from string, to string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Order{}).
			Where("id = ? AND status = ?", order.ID, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrOrderStatusConflict
		}

		if to != domain.OrderStatusDelivered {
			return nil
		}
		res = tx.Model(&entities.FoodListing{}).
			Where("id = ? AND status IN ?", order.FoodID, []string{domain.FoodStatusReserved, domain.FoodStatusCollected}).
			Update("status", domain.FoodStatusCollected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrFoodStatusConflict
		}
		return nil
	})
}

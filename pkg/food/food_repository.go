package food

import (
	"context"
	"errors"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFoodListing(ctx context.Context, food *entities.FoodListing) error
		GetFoodListingByID(ctx context.Context, id string) (*entities.FoodListing, error)
		GetAllFoodListings(ctx context.Context) ([]*entities.FoodListing, error)
		GetFoodListingsByDonor(ctx context.Context, donorID string) ([]*entities.FoodListing, error)
		UpdateFoodListing(ctx context.Context, food *entities.FoodListing, expectedStatus string, updates map[string]interface{}) error
		DeleteFoodListing(ctx context.Context, id string, expectedStatus string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFoodListing(ctx context.Context, food *entities.FoodListing) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodListingByID(ctx context.Context, id string) (*entities.FoodListing, error) {
	var food entities.FoodListing
	if err := r.db.WithContext(ctx).Preload("Donor").Where("id = ?", id).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetAllFoodListings(ctx context.Context) ([]*entities.FoodListing, error) {
	var foods []*entities.FoodListing
	if err := r.db.WithContext(ctx).Preload("Donor").Order("created_at desc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetFoodListingsByDonor(ctx context.Context, donorID string) ([]*entities.FoodListing, error) {
	var foods []*entities.FoodListing
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// UpdateFoodListing writes updates only while the stored status still equals
// expectedStatus, so a concurrent reservation is never overwritten.
func (r *foodRepository) UpdateFoodListing(ctx context.Context, food *entities.FoodListing, expectedStatus string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Where("id = ? AND status = ?", food.ID, expectedStatus).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFoodStatusConflict
	}
	return nil
}

func (r *foodRepository) DeleteFoodListing(ctx context.Context, id string, expectedStatus string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, expectedStatus).
		Delete(&entities.FoodListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFoodStatusConflict
	}
	return nil
}

package fund

import (
	"context"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"

	"gorm.io/gorm"
)

type (
	FundRepository interface {
		CreateFundDonation(ctx context.Context, donation *entities.FundDonation) error
		GetFundDonationsByDonor(ctx context.Context, donorID string) ([]*entities.FundDonation, error)
		GetAllFundDonations(ctx context.Context) ([]*entities.FundDonation, error)
		GetCompletedFundDonations(ctx context.Context) ([]*entities.FundDonation, error)
	}

	fundRepository struct {
		db *gorm.DB
	}
)

func NewFundRepository(db *gorm.DB) FundRepository {
	return &fundRepository{db: db}
}

func (r *fundRepository) CreateFundDonation(ctx context.Context, donation *entities.FundDonation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *fundRepository) GetFundDonationsByDonor(ctx context.Context, donorID string) ([]*entities.FundDonation, error) {
	var donations []*entities.FundDonation
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *fundRepository) GetAllFundDonations(ctx context.Context) ([]*entities.FundDonation, error) {
	var donations []*entities.FundDonation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *fundRepository) GetCompletedFundDonations(ctx context.Context) ([]*entities.FundDonation, error) {
	var donations []*entities.FundDonation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("status = ?", domain.FundStatusCompleted).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

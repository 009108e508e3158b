package food

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
	"FoodLink-Backend/internal/logger"
	"FoodLink-Backend/internal/utils/storage"
	"FoodLink-Backend/pkg/estimator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const imageFolder = "foods"

type (
	FoodService interface {
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.FoodResponse, error)
		GetAllFoods(ctx context.Context) ([]domain.FoodResponse, error)
		GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string, role string) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string, userID string, role string) error
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
		estimator      estimator.FoodEstimator
	}

	foodDetails struct {
		Type        string
		Quantity    string
		ExpiryDate  string
		Price       *float64
		Description string
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3, estimator estimator.FoodEstimator) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
		estimator:      estimator,
	}
}

func (d foodDetails) complete() bool {
	return d.Type != "" && d.Quantity != "" && d.ExpiryDate != "" && d.Price != nil && d.Description != ""
}

func (d foodDetails) hasRequired() bool {
	return d.Type != "" && d.Quantity != "" && d.ExpiryDate != ""
}

// fillFrom copies estimate values into fields the client left empty.
func (d *foodDetails) fillFrom(est domain.FoodEstimate) {
	if d.Type == "" {
		d.Type = strings.ToLower(strings.TrimSpace(est.Type))
	}
	if d.Quantity == "" {
		d.Quantity = strings.TrimSpace(est.Quantity)
	}
	if d.ExpiryDate == "" {
		d.ExpiryDate = strings.TrimSpace(est.ExpiryDate)
	}
	if d.Price == nil {
		price := est.Price
		d.Price = &price
	}
	if d.Description == "" {
		d.Description = strings.TrimSpace(est.Description)
	}
}

// validateProvided checks only the fields present, so client input is
// rejected before the estimator is consulted.
func (d foodDetails) validateProvided() error {
	if d.Type != "" && !domain.IsValidFoodType(d.Type) {
		return domain.ErrInvalidFoodType
	}
	if d.ExpiryDate != "" {
		if _, err := ParseExpiryDate(d.ExpiryDate); err != nil {
			return err
		}
	}
	if d.Price != nil && *d.Price < 0 {
		return domain.ErrInvalidPrice
	}
	return nil
}

func (d foodDetails) validate() (time.Time, error) {
	if !domain.IsValidFoodType(d.Type) {
		return time.Time{}, domain.ErrInvalidFoodType
	}
	if strings.TrimSpace(d.Quantity) == "" {
		return time.Time{}, domain.ErrQuantityRequired
	}
	expiry, err := ParseExpiryDate(d.ExpiryDate)
	if err != nil {
		return time.Time{}, err
	}
	if d.Price != nil && *d.Price < 0 {
		return time.Time{}, domain.ErrInvalidPrice
	}
	return expiry, nil
}

// ParseExpiryDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseExpiryDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(domain.ExpiryDateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidExpiryDate
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.FoodResponse, error) {
	donorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodResponse{}, domain.ErrFoodNameRequired
	}

	details := foodDetails{
		Type:        strings.ToLower(strings.TrimSpace(req.Type)),
		Quantity:    strings.TrimSpace(req.Quantity),
		ExpiryDate:  strings.TrimSpace(req.ExpiryDate),
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
	}
	if err := details.validateProvided(); err != nil {
		return domain.FoodResponse{}, err
	}

	if !details.complete() {
		estimate, err := s.estimator.EstimateFoodDetails(ctx, name)
		switch {
		case err == nil:
			details.fillFrom(estimate)
		case details.hasRequired():
			logger.FromCtx(ctx).Warn("food detail estimation skipped", zap.String("name", name), zap.Error(err))
		default:
			return domain.FoodResponse{}, err
		}
	}

	expiry, err := details.validate()
	if err != nil {
		return domain.FoodResponse{}, fmt.Errorf("%w: %w", domain.ErrInvalidEstimatedDetails, err)
	}

	food := &entities.FoodListing{
		ID:          uuid.New(),
		DonorID:     donorID,
		Name:        name,
		Type:        details.Type,
		Quantity:    details.Quantity,
		ExpiryDate:  expiry,
		Description: details.Description,
		Status:      domain.FoodStatusAvailable,
	}
	if details.Price != nil {
		food.Price = *details.Price
	}

	var objectKey string
	if req.Image != nil {
		objectKey, err = s.s3.UploadFile(ctx, food.ID.String(), req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.FoodResponse{}, err
		}
		food.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.foodRepository.CreateFoodListing(ctx, food); err != nil {
		if objectKey != "" {
			_ = s.s3.DeleteFile(ctx, objectKey)
		}
		return domain.FoodResponse{}, err
	}

	logger.FromCtx(ctx).Info("food listing created",
		zap.String("food_id", food.ID.String()), zap.String("donor_id", userID))
	return ToResponse(food), nil
}

func (s *foodService) GetAllFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetAllFoodListings(ctx)
	if err != nil {
		return nil, err
	}
	return ToResponses(foods), nil
}

func (s *foodService) GetMyFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	foods, err := s.foodRepository.GetFoodListingsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToResponses(foods), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return ToResponse(food), nil
}

func (s *foodService) getFood(ctx context.Context, id string) (*entities.FoodListing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrFoodNotFound
	}
	return s.foodRepository.GetFoodListingByID(ctx, id)
}

func canManage(food *entities.FoodListing, userID string, role string) bool {
	return role == domain.RoleAdmin || food.DonorID.String() == userID
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string, role string) (domain.FoodResponse, error) {
	if req.Description == nil && req.Price == nil && req.Status == nil {
		return domain.FoodResponse{}, domain.ErrNoUpdatableFieldProvided
	}

	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	if !canManage(food, userID, role) {
		return domain.FoodResponse{}, domain.ErrUnauthorizedAccess
	}

	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.FoodResponse{}, domain.ErrInvalidPrice
		}
		updates["price"] = *req.Price
	}
	if req.Status != nil {
		if !domain.IsValidFoodStatus(*req.Status) {
			return domain.FoodResponse{}, domain.ErrInvalidFoodStatus
		}
		if !domain.CanTransitionFood(food.Status, *req.Status) {
			return domain.FoodResponse{}, domain.ErrInvalidFoodTransition
		}
		updates["status"] = *req.Status
	}

	if err := s.foodRepository.UpdateFoodListing(ctx, food, food.Status, updates); err != nil {
		return domain.FoodResponse{}, err
	}

	if v, ok := updates["description"].(string); ok {
		food.Description = v
	}
	if v, ok := updates["price"].(float64); ok {
		food.Price = v
	}
	if v, ok := updates["status"].(string); ok {
		food.Status = v
	}
	food.UpdatedAt = time.Now()
	return ToResponse(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string, userID string, role string) error {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(food, userID, role) {
		return domain.ErrUnauthorizedAccess
	}
	if food.Status != domain.FoodStatusAvailable {
		return domain.ErrFoodInUse
	}

	if err := s.foodRepository.DeleteFoodListing(ctx, id, domain.FoodStatusAvailable); err != nil {
		if errors.Is(err, domain.ErrFoodStatusConflict) {
			return domain.ErrFoodInUse
		}
		return err
	}

	if food.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(food.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
				logger.FromCtx(ctx).Warn("failed to delete food image",
					zap.String("food_id", id), zap.Error(err))
			}
		}
	}
	return nil
}

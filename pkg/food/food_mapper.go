package food

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
	"FoodLink-Backend/pkg/user"
)

func ToResponse(f *entities.FoodListing) domain.FoodResponse {
	return domain.FoodResponse{
		ID:          f.ID.String(),
		Name:        f.Name,
		Type:        f.Type,
		Quantity:    f.Quantity,
		ExpiryDate:  f.ExpiryDate,
		Price:       f.Price,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Status:      f.Status,
		DonorID:     f.DonorID.String(),
		Donor:       user.ToSummary(f.Donor),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func ToResponses(foods []*entities.FoodListing) []domain.FoodResponse {
	response := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		response = append(response, ToResponse(f))
	}
	return response
}

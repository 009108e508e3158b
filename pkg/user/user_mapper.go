package user

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
)

// ToSummary is the joined view of a user; nil when the relation was not loaded.
func ToSummary(u *entities.User) *domain.UserSummary {
	if u == nil {
		return nil
	}
	return &domain.UserSummary{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func ToResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Access:    u.Access,
		CreatedAt: u.CreatedAt,
	}
}

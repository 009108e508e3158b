package order

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
	"FoodLink-Backend/pkg/user"
)

func ToResponse(o *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:                o.ID.String(),
		FoodID:            o.FoodID.String(),
		DonorID:           o.DonorID.String(),
		Donor:             user.ToSummary(o.Donor),
		NgoID:             o.NgoID.String(),
		Ngo:               user.ToSummary(o.Ngo),
		Quantity:          o.Quantity,
		Amount:            o.Amount,
		Status:            o.Status,
		PaymentStatus:     o.PaymentStatus,
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryPartnerID: o.DeliveryPartnerID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.Food != nil {
		res.Food = &domain.FoodSummary{ID: o.Food.ID.String(), Name: o.Food.Name}
	}
	return res
}

func ToResponses(orders []*entities.Order) []domain.OrderResponse {
	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, ToResponse(o))
	}
	return response
}

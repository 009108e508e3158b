package domain

import (
	"errors"
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusInTransit = "in-transit"
	OrderStatusDelivered = "delivered"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// OrderStatusSequence is the forward-only lifecycle of an order.
var OrderStatusSequence = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInTransit,
	OrderStatusDelivered,
}

var (
	MessageSuccessUpdateStatus = "Order status updated to %s"

	MessageFailedPlaceOrder   = "failed to place order"
	MessageFailedGetOrders    = "failed to retrieve orders"
	MessageFailedUpdateStatus = "failed to update order status"

	ErrOrderNotFound           = errors.New("Order not found")
	ErrFoodNotAvailable        = errors.New("Food not available")
	ErrInvalidOrderStatus      = errors.New("Invalid status")
	ErrInvalidOrderTransition  = errors.New("order status can only move one step forward")
	ErrUnauthorizedOrderAccess = errors.New("not authorized to access this order")
	ErrOrderStatusConflict     = errors.New("order was modified concurrently")
)

type (
	PlaceOrderRequest struct {
		FoodID          string `json:"foodId" validate:"required,uuid"`
		Quantity        string `json:"quantity" validate:"required"`
		DeliveryAddress string `json:"deliveryAddress" validate:"omitempty,max=500"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,orderstatus"`
	}

	OrderResponse struct {
		ID                string       `json:"id"`
		FoodID            string       `json:"foodId"`
		Food              *FoodSummary `json:"food,omitempty"`
		DonorID           string       `json:"donorId"`
		Donor             *UserSummary `json:"donor,omitempty"`
		NgoID             string       `json:"ngoId"`
		Ngo               *UserSummary `json:"ngo,omitempty"`
		Quantity          string       `json:"quantity"`
		Amount            float64      `json:"amount"`
		Status            string       `json:"status"`
		PaymentStatus     string       `json:"paymentStatus"`
		DeliveryAddress   string       `json:"deliveryAddress,omitempty"`
		DeliveryPartnerID string       `json:"deliveryPartnerId,omitempty"`
		CreatedAt         time.Time    `json:"createdAt"`
		UpdatedAt         time.Time    `json:"updatedAt"`
	}

	UpdateOrderStatusResponse struct {
		Message string        `json:"message"`
		Order   OrderResponse `json:"order"`
	}
)

func IsValidOrderStatus(s string) bool {
	return contains(OrderStatusSequence, s)
}

// OrderStatusRank returns the position of s in the lifecycle, or -1.
func OrderStatusRank(s string) int {
	for i, status := range OrderStatusSequence {
		if status == s {
			return i
		}
	}
	return -1
}

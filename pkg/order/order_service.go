package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
	"FoodLink-Backend/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	OrderService interface {
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error)
		GetOrderByID(ctx context.Context, id string, userID string, role string) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetDonorOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id string, status string, userID string, role string) (domain.UpdateOrderStatusResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
	}
)

func NewOrderService(orderRepository OrderRepository) OrderService {
	return &orderService{orderRepository: orderRepository}
}

func (s *orderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (domain.OrderResponse, error) {
	ngoID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}
	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrFoodNotAvailable
	}
	if strings.TrimSpace(req.Quantity) == "" {
		return domain.OrderResponse{}, domain.ErrQuantityRequired
	}

	order := &entities.Order{
		ID:              uuid.New(),
		FoodID:          foodID,
		NgoID:           ngoID,
		Quantity:        strings.TrimSpace(req.Quantity),
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
	}
	if err := s.orderRepository.PlaceOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	logger.FromCtx(ctx).Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("food_id", order.FoodID.String()),
		zap.String("ngo_id", userID))
	return ToResponse(order), nil
}

func (s *orderService) getOrder(ctx context.Context, id string, userID string, role string) (*entities.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrOrderNotFound
	}
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && order.NgoID.String() != userID && order.DonorID.String() != userID {
		return nil, domain.ErrUnauthorizedOrderAccess
	}
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string, userID string, role string) (domain.OrderResponse, error) {
	order, err := s.getOrder(ctx, id, userID, role)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	return ToResponse(order), nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	orders, err := s.orderRepository.GetOrdersByNgo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToResponses(orders), nil
}

func (s *orderService) GetDonorOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	orders, err := s.orderRepository.GetOrdersByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToResponses(orders), nil
}

// UpdateOrderStatus advances an order exactly one step along
// pending, confirmed, in-transit, delivered. Repeating the current status
// changes nothing. An unknown status is rejected before the order is looked up.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status string, userID string, role string) (domain.UpdateOrderStatusResponse, error) {
	status = strings.TrimSpace(status)
	if !domain.IsValidOrderStatus(status) {
		return domain.UpdateOrderStatusResponse{}, domain.ErrInvalidOrderStatus
	}

	order, err := s.getOrder(ctx, id, userID, role)
	if err != nil {
		return domain.UpdateOrderStatusResponse{}, err
	}

	if status != order.Status {
		if domain.OrderStatusRank(status) != domain.OrderStatusRank(order.Status)+1 {
			return domain.UpdateOrderStatusResponse{}, domain.ErrInvalidOrderTransition
		}
		if err := s.orderRepository.UpdateOrderStatus(ctx, order, order.Status, status); err != nil {
			return domain.UpdateOrderStatusResponse{}, err
		}

		logger.FromCtx(ctx).Info("order status updated",
			zap.String("order_id", id),
			zap.String("from", order.Status),
			zap.String("to", status),
			zap.String("by", userID))
		order.Status = status
		order.UpdatedAt = time.Now()
		if status == domain.OrderStatusDelivered && order.Food != nil {
			order.Food.Status = domain.FoodStatusCollected
		}
	}

	return domain.UpdateOrderStatusResponse{
		Message: fmt.Sprintf(domain.MessageSuccessUpdateStatus, status),
		Order:   ToResponse(order),
	}, nil
}

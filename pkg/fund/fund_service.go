package fund

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/entities"
	"FoodLink-Backend/internal/logger"
	"FoodLink-Backend/pkg/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var now = time.Now

type (
	FundService interface {
		CreateFund(ctx context.Context, req domain.CreateFundRequest, userID string) (domain.FundResponse, error)
		GetMyFunds(ctx context.Context, userID string) ([]domain.FundResponse, error)
		GetAllFunds(ctx context.Context) ([]domain.FundResponse, error)
	}

	fundService struct {
		fundRepository FundRepository
	}
)

func NewFundService(fundRepository FundRepository) FundService {
	return &fundService{fundRepository: fundRepository}
}

// NewTransactionID returns TXN_<epoch-ms>_<0..999>.
func NewTransactionID() string {
	return fmt.Sprintf("TXN_%d_%d", now().UnixMilli(), rand.Intn(1000))
}

func (s *fundService) CreateFund(ctx context.Context, req domain.CreateFundRequest, userID string) (domain.FundResponse, error) {
	donorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FundResponse{}, domain.ErrParseUUID
	}

	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if req.Amount == nil || method == "" {
		return domain.FundResponse{}, domain.ErrFundAmountRequired
	}
	if *req.Amount <= 0 {
		return domain.FundResponse{}, domain.ErrInvalidFundAmount
	}
	if !domain.IsValidPaymentMethod(method) {
		return domain.FundResponse{}, domain.ErrInvalidPaymentMethod
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		purpose = domain.DefaultFundPurpose
	}

	// settlement is out of scope, every recorded donation counts as completed
	donation := &entities.FundDonation{
		ID:            uuid.New(),
		DonorID:       donorID,
		Amount:        *req.Amount,
		PaymentMethod: method,
		TransactionID: NewTransactionID(),
		Purpose:       purpose,
		Status:        domain.FundStatusCompleted,
	}
	if err := s.fundRepository.CreateFundDonation(ctx, donation); err != nil {
		return domain.FundResponse{}, err
	}

	logger.FromCtx(ctx).Info("fund donation recorded",
		zap.String("transaction_id", donation.TransactionID),
		zap.String("donor_id", userID),
		zap.Float64("amount", donation.Amount))
	return ToResponse(donation), nil
}

func (s *fundService) GetMyFunds(ctx context.Context, userID string) ([]domain.FundResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}
	donations, err := s.fundRepository.GetFundDonationsByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToResponses(donations), nil
}

func (s *fundService) GetAllFunds(ctx context.Context) ([]domain.FundResponse, error) {
	donations, err := s.fundRepository.GetAllFundDonations(ctx)
	if err != nil {
		return nil, err
	}
	return ToResponses(donations), nil
}

func ToResponse(d *entities.FundDonation) domain.FundResponse {
	return domain.FundResponse{
		ID:            d.ID.String(),
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		TransactionID: d.TransactionID,
		Purpose:       d.Purpose,
		Status:        d.Status,
		DonorID:       d.DonorID.String(),
		Donor:         user.ToSummary(d.Donor),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToResponses(donations []*entities.FundDonation) []domain.FundResponse {
	response := make([]domain.FundResponse, 0, len(donations))
	for _, d := range donations {
		response = append(response, ToResponse(d))
	}
	return response
}

package domain

import (
	"errors"
	"time"
)

const (
	FundStatusPending   = "pending"
	FundStatusCompleted = "completed"
	FundStatusFailed    = "failed"

	DefaultFundPurpose = "General Support"
)

var PaymentMethods = []string{"upi", "card", "netbanking", "cash"}

var (
	MessageFailedCreateFund = "failed to record donation"
	MessageFailedGetFunds   = "failed to retrieve donations"

	ErrFundAmountRequired   = errors.New("Amount & payment method required")
	ErrInvalidFundAmount    = errors.New("amount must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

type (
	CreateFundRequest struct {
		Amount        *float64 `json:"amount" validate:"required,gt=0"`
		PaymentMethod string   `json:"paymentMethod" validate:"required,paymentmethod"`
		Purpose       string   `json:"purpose" validate:"omitempty,max=200"`
	}

	FundResponse struct {
		ID            string       `json:"id"`
		Amount        float64      `json:"amount"`
		PaymentMethod string       `json:"paymentMethod"`
		TransactionID string       `json:"transactionId"`
		Purpose       string       `json:"purpose"`
		Status        string       `json:"status"`
		DonorID       string       `json:"donorId"`
		Donor         *UserSummary `json:"donor,omitempty"`
		CreatedAt     time.Time    `json:"createdAt"`
		UpdatedAt     time.Time    `json:"updatedAt"`
	}
)

func IsValidPaymentMethod(m string) bool {
	return contains(PaymentMethods, m)
}

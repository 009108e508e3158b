package entities

import (
	"github.com/google/uuid"
)

type FundDonation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID       uuid.UUID `gorm:"type:uuid;not null;index" json:"donorId"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"paymentMethod"` // upi, card, netbanking, cash
	TransactionID string    `gorm:"uniqueIndex" json:"transactionId"`
	Purpose       string    `gorm:"default:'General Support'" json:"purpose"`
	Status        string    `gorm:"type:varchar(20);default:'pending';index" json:"status"` // pending, completed, failed

	Donor *User `gorm:"foreignKey:DonorID"`
	Timestamp
}

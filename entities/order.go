package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID            uuid.UUID `gorm:"type:uuid;not null;index" json:"foodId"`
	DonorID           uuid.UUID `gorm:"type:uuid;index" json:"donorId"`
	NgoID             uuid.UUID `gorm:"type:uuid;not null;index" json:"ngoId"`
	Quantity          string    `gorm:"not null" json:"quantity"`
	Amount            float64   `gorm:"not null" json:"amount"`
	Status            string    `gorm:"type:varchar(20);default:'pending'" json:"status"`        // pending, confirmed, in-transit, delivered
	PaymentStatus     string    `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"` // pending, completed, failed
	DeliveryAddress   string    `json:"deliveryAddress,omitempty"`
	DeliveryPartnerID string    `json:"deliveryPartnerId,omitempty"`

	Food  *FoodListing `gorm:"foreignKey:FoodID"`
	Donor *User        `gorm:"foreignKey:DonorID"`
	Ngo   *User        `gorm:"foreignKey:NgoID"`
	Timestamp
}

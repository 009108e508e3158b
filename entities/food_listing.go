package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodListing struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"donorId"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"` // fruits, vegetables, grains, dairy, meat, prepared
	Quantity    string    `gorm:"not null" json:"quantity"`              // free text, e.g. "10 kg"
	ExpiryDate  time.Time `gorm:"type:date;not null" json:"expiryDate"`
	Price       float64   `gorm:"default:0" json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Status      string    `gorm:"type:varchar(20);default:'available';index" json:"status"` // available, reserved, collected

	Donor *User `gorm:"foreignKey:DonorID"`
	Timestamp
}

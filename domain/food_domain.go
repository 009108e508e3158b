package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	FoodStatusAvailable = "available"
	FoodStatusReserved  = "reserved"
	FoodStatusCollected = "collected"

	ExpiryDateLayout = "2006-01-02"
)

var (
	FoodTypes    = []string{"fruits", "vegetables", "grains", "dairy", "meat", "prepared"}
	FoodStatuses = []string{FoodStatusAvailable, FoodStatusReserved, FoodStatusCollected}
)

var (
	MessageSuccessDeleteFood = "Food removed"

	MessageFailedCreateFood = "failed to create food listing"
	MessageFailedUpdateFood = "failed to update food listing"
	MessageFailedDeleteFood = "failed to delete food listing"
	MessageFailedGetFoods   = "failed to retrieve food listings"

	ErrFoodNotFound             = errors.New("food not found")
	ErrUnauthorizedAccess       = errors.New("not authorized")
	ErrInvalidFoodType          = errors.New("invalid food type")
	ErrInvalidFoodStatus        = errors.New("invalid food status")
	ErrInvalidFoodTransition    = errors.New("invalid food status transition")
	ErrInvalidExpiryDate        = errors.New("invalid expiry date")
	ErrInvalidPrice             = errors.New("price must not be negative")
	ErrQuantityRequired         = errors.New("quantity is required")
	ErrFoodNameRequired         = errors.New("food name is required")
	ErrFoodStatusConflict       = errors.New("food listing was modified concurrently")
	ErrInvalidImageFormat       = errors.New("invalid image format")
	ErrEstimatorUnavailable     = errors.New("food detail generator is not configured")
	ErrEstimationFailed         = errors.New("AI processing failed")
	ErrInvalidEstimatedDetails  = errors.New("generated food details are invalid")
	ErrNoUpdatableFieldProvided = errors.New("no updatable field provided")
	ErrFoodInUse                = errors.New("food listing has an order and cannot be removed")
)

type (
	CreateFoodRequest struct {
		Name        string                `json:"name" form:"name" validate:"required"`
		Type        string                `json:"type" form:"type" validate:"omitempty,foodtype"`
		Quantity    string                `json:"quantity" form:"quantity"`
		ExpiryDate  string                `json:"expiryDate" form:"expiryDate"`
		Price       *float64              `json:"price" form:"price" validate:"omitempty,gte=0"`
		Description string                `json:"description" form:"description"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	// UpdateFoodRequest is the allow-listed set of fields a donor or admin may
	// change on an existing listing.
	UpdateFoodRequest struct {
		Description *string  `json:"description" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		Status      *string  `json:"status" validate:"omitempty,foodstatus"`
	}

	// FoodEstimate is what the food detail generator produces for a name.
	FoodEstimate struct {
		Description string  `json:"description"`
		Type        string  `json:"type"`
		Quantity    string  `json:"quantity"`
		ExpiryDate  string  `json:"expiryDate"`
		Price       float64 `json:"price"`
	}

	FoodResponse struct {
		ID          string       `json:"id"`
		Name        string       `json:"name"`
		Type        string       `json:"type"`
		Quantity    string       `json:"quantity"`
		ExpiryDate  time.Time    `json:"expiryDate"`
		Price       float64      `json:"price"`
		Description string       `json:"description,omitempty"`
		ImageURL    string       `json:"imageUrl,omitempty"`
		Status      string       `json:"status"`
		DonorID     string       `json:"donorId"`
		Donor       *UserSummary `json:"donor,omitempty"`
		CreatedAt   time.Time    `json:"createdAt"`
		UpdatedAt   time.Time    `json:"updatedAt"`
	}

	FoodSummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

func IsValidFoodType(t string) bool {
	return contains(FoodTypes, t)
}

func IsValidFoodStatus(s string) bool {
	return contains(FoodStatuses, s)
}

// CanTransitionFood reports whether a listing may move from one status to
// another. Reservation only happens through order placement, so it is not a
// legal direct transition.
func CanTransitionFood(from, to string) bool {
	if from == to {
		return true
	}
	return from == FoodStatusReserved && to == FoodStatusCollected
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

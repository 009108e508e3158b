package utils

import (
	"errors"
	"fmt"
	"strings"

	"FoodLink-Backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("foodtype", func(fl validator.FieldLevel) bool {
		return domain.IsValidFoodType(fl.Field().String())
	})
	_ = v.RegisterValidation("foodstatus", func(fl validator.FieldLevel) bool {
		return domain.IsValidFoodStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return domain.IsValidOrderStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return domain.IsValidPaymentMethod(fl.Field().String())
	})
	return v
}

// ValidationMessage flattens validator errors into one readable line.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

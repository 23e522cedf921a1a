package validation

import (
	"errors"
)

// ValidateQuantity checks a food quantity in grams
func ValidateQuantity(quantity float64) error {
	if quantity <= 0 {
		return errors.New("quantity must be greater than zero")
	}

	return nil
}

// ValidateNutrient checks an optional nutrient amount
func ValidateNutrient(name string, value *float64) error {
	if value != nil && *value < 0 {
		return errors.New(name + " must not be negative")
	}

	return nil
}

// ValidateTarget checks a goal target amount
func ValidateTarget(name string, value float64) error {
	if value < 0 {
		return errors.New(name + " target must not be negative")
	}

	return nil
}

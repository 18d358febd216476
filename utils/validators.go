package utils

import (
	"sync"
	"unicode"

	"taskpulse/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// InitValidator registers the custom binding rules on gin's validator.
// Safe to call more than once.
func InitValidator() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterCustomValidators(v)
		}
	})
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("password", ValidatePasswordRule)
	v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		_, ok := model.ParsePriority(fl.Field().String())
		return ok
	})
	v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseStatus(fl.Field().String())
		return ok
	})
	v.RegisterValidation("goaltype", func(fl validator.FieldLevel) bool {
		switch model.GoalType(fl.Field().String()) {
		case model.GoalMonthly, model.GoalQuarterly, model.GoalYearly:
			return true
		}
		return false
	})
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

// ValidatePassword requires at least 6 characters, a number, and a
// punctuation or symbol character.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	hasNumber := false
	hasSpecial := false
	for _, char := range password {
		switch {
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasNumber && hasSpecial
}

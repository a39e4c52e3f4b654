package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"jobportal_front/internal/models"
)

// registerCustomRules регистрирует правила для enum-строк из models.
// Пустые значения пропускаются: для них есть 'required'.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-offer-decision", validateOfferDecision)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleJobSeeker, models.UserRoleCompany:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ApplicationStatus(value).Valid()
}

func validateOfferDecision(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.OfferDecision(value).Valid()
}

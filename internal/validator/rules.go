package validator

import (
	"log"

	"cncquote/internal/pricing"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the pricing-table lookups into validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register is a startup error, not a
			// per-request one.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-material': key exists in the material table
	mustRegister("is-material", validateMaterial)

	// 'is-tolerance': key exists in the tolerance-class table
	mustRegister("is-tolerance", validateTolerance)

	// 'is-finish': key exists in the finish table
	mustRegister("is-finish", validateFinish)
}

func validateMaterial(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are 'required's job
	}
	_, ok := pricing.MaterialFor(value)
	return ok
}

func validateTolerance(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := pricing.ToleranceFor(value)
	return ok
}

func validateFinish(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := pricing.FinishFor(value)
	return ok
}

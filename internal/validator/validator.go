// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	ownershipRegex = regexp.MustCompile(`^\d+(\.\d+)?%?$`)
	otpRegex       = regexp.MustCompile(`^\d{6}$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_class", validateAssetClass)
		_ = v.RegisterValidation("business_status", validateBusinessStatus)
		_ = v.RegisterValidation("ownership", validateOwnership)
		_ = v.RegisterValidation("otp_code", validateOTPCode)
	}
}

func validateAssetClass(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "realEstate", "stocks", "commodities", "businesses":
		return true
	}
	return false
}

func validateBusinessStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Active", "Exited", "Planning":
		return true
	}
	return false
}

// validateOwnership accepts percentage strings like "25%", "12.5%" or a
// bare number. Empty is allowed; pair with required where needed.
func validateOwnership(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return ownershipRegex.MatchString(s)
}

func validateOTPCode(fl validator.FieldLevel) bool {
	return otpRegex.MatchString(fl.Field().String())
}

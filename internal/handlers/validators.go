package handlers

import (
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", validatePhone)
		_ = v.RegisterValidation("entrytype", validateEntryType)
	}
}

// validatePhone accepts numbers written with spaces, dashes or brackets.
func validatePhone(fl validator.FieldLevel) bool {
	return utils.IsValidPhone(fl.Field().String())
}

func validateEntryType(fl validator.FieldLevel) bool {
	return domain.EntryType(fl.Field().String()).IsValid()
}

package dto

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Account codes start with a digit and stay short; lexicographic order on
// codes is what orders the chart everywhere.
var accountCodePattern = regexp.MustCompile(`^[0-9][0-9A-Za-z.\-]{0,19}$`)

// RegisterCustomValidations installs domain validation rules on gin's
// binding validator. Call once at startup before serving requests.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
		return accountCodePattern.MatchString(fl.Field().String())
	})
}
